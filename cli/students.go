package cli

import (
	"errors"
	"fmt"
	"strconv"

	"student-manager/models"
	"student-manager/service"

	"github.com/spf13/cobra"
)

func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every student",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			if err := e.svc.Load(cmd.Context()); err != nil {
				return err
			}
			return writeRows(cmd.OutOrStdout(), opts.Format, e.svc.Grid().Rows())
		},
	}
}

type studentFlags struct {
	name   string
	course string
	mobile string
}

func (f *studentFlags) register(cmd *cobra.Command, defaultCourse string) {
	cmd.Flags().StringVar(&f.name, "name", "", "student name")
	cmd.Flags().StringVar(&f.course, "course", defaultCourse, fmt.Sprintf("one of %v", models.CourseNames()))
	cmd.Flags().StringVar(&f.mobile, "mobile", "", "mobile number")
}

func (f *studentFlags) input() (models.StudentInput, error) {
	course, err := models.ParseCourse(f.course)
	if err != nil {
		return models.StudentInput{}, err
	}
	return models.StudentInput{Name: f.name, Course: course, Mobile: f.mobile}, nil
}

func NewAddCommand(opts *RootOptions) *cobra.Command {
	flags := &studentFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.input()
			if err != nil {
				return err
			}
			e, err := setup(opts)
			if err != nil {
				return err
			}
			res, err := e.svc.Insert(cmd.Context(), in)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts.Format, res, fmt.Sprintf("Student %d added", res.ID))
		},
	}
	flags.register(cmd, string(models.CourseBiology))
	return cmd
}

func NewEditCommand(opts *RootOptions) *cobra.Command {
	flags := &studentFlags{}
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Overwrite name, course and mobile of a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			in, err := flags.input()
			if err != nil {
				return err
			}
			e, err := setup(opts)
			if err != nil {
				return err
			}
			res, err := e.svc.Update(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts.Format, res, fmt.Sprintf("%d record(s) updated", res.RowsAffected))
		},
	}
	flags.register(cmd, "")
	cmd.MarkFlagRequired("course")
	return cmd
}

func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			e, err := setup(opts)
			if err != nil {
				return err
			}
			res, err := e.svc.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts.Format, res, res.Message)
		},
	}
}

func NewSearchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search TEXT",
		Short: "Show students with any field containing TEXT (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			if err := e.svc.Load(cmd.Context()); err != nil {
				return err
			}
			rows, err := e.svc.Search(args[0])
			if errors.Is(err, service.ErrNotFound) {
				fmt.Fprintln(cmd.ErrOrStderr(), service.MsgNotFound)
				return nil
			}
			if err != nil {
				return err
			}
			return writeRows(cmd.OutOrStdout(), opts.Format, rows)
		},
	}
}

func NewCoursesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "List the courses a student can take",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), models.CourseNames())
			}
			for _, c := range models.CourseNames() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid student ID %q", s)
	}
	return id, nil
}
