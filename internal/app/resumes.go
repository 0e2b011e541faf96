package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallgrass-systems/jobfunnel/internal/model"
	"github.com/tallgrass-systems/jobfunnel/internal/output"
	"github.com/tallgrass-systems/jobfunnel/internal/store"
)

var resumeAddFile string

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage resume versions",
}

var resumeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a resume version",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeAdd,
}

var resumeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resume versions",
	RunE:  runResumeList,
}

var resumeRenameCmd = &cobra.Command{
	Use:   "rename <resume> <new-name>",
	Short: "Rename a resume version",
	Args:  cobra.ExactArgs(2),
	RunE:  runResumeRename,
}

var resumeRmCmd = &cobra.Command{
	Use:   "rm <resume>",
	Short: "Delete a resume version (refused while applications reference it)",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeRemove,
}

func init() {
	resumeAddCmd.Flags().StringVar(&resumeAddFile, "file", "", "Path to the resume file")
	resumeCmd.AddCommand(resumeAddCmd, resumeListCmd, resumeRenameCmd, resumeRmCmd)
	rootCmd.AddCommand(resumeCmd)
}

func runResumeAdd(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	r := &model.Resume{Name: args[0]}

	if resumeAddFile != "" {
		info, err := os.Stat(resumeAddFile)
		if err != nil {
			return fmt.Errorf("reading resume file: %w", err)
		}
		abs, err := filepath.Abs(resumeAddFile)
		if err != nil {
			return err
		}
		r.FileName = filepath.Base(resumeAddFile)
		r.StoredName = filepath.Base(abs)
		r.SizeBytes = info.Size()
		r.FilePath = abs
	}

	if err := e.db.InsertResume(r); err != nil {
		return fmt.Errorf("saving resume: %w", err)
	}
	fmt.Printf("Registered resume %s — id %s\n", output.StyleBold.Render(r.Name), shortID(r.ID))
	return nil
}

func runResumeList(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	resumes, err := e.db.ListResumes()
	if err != nil {
		return fmt.Errorf("listing resumes: %w", err)
	}

	if flagJSON {
		return printJSON(resumes)
	}

	if len(resumes) == 0 {
		fmt.Println("No resumes registered.")
		return nil
	}

	tbl := output.NewTable("ID", "NAME", "FILE", "SIZE", "USED BY", "UPLOADED").RightAlign(3, 4)
	for _, r := range resumes {
		n, err := e.db.ResumeUsageCount(r.ID)
		if err != nil {
			return err
		}
		file := r.FileName
		if file == "" {
			file = "-"
		}
		tbl.AddRow(shortID(r.ID), r.Name, file, formatSize(r.SizeBytes),
			fmt.Sprintf("%d", n), r.UploadedAt.Format("2006-01-02"))
	}
	tbl.Print()
	return nil
}

func runResumeRename(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	r, err := resolveResume(e, args[0])
	if err != nil {
		return err
	}
	if err := e.db.RenameResume(r.ID, args[1]); err != nil {
		return fmt.Errorf("renaming resume: %w", err)
	}
	fmt.Printf("Renamed %q to %q\n", r.Name, args[1])
	return nil
}

func runResumeRemove(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	r, err := resolveResume(e, args[0])
	if err != nil {
		return err
	}
	if err := e.db.DeleteResume(r.ID); err != nil {
		if err == store.ErrResumeInUse {
			n, _ := e.db.ResumeUsageCount(r.ID)
			return fmt.Errorf("resume %q is linked to %d application(s); unlink them first", r.Name, n)
		}
		return fmt.Errorf("deleting resume: %w", err)
	}
	fmt.Printf("Deleted resume %q\n", r.Name)
	return nil
}

// resolveResume finds a resume by ID, ID prefix, or exact name.
func resolveResume(e *env, ref string) (*model.Resume, error) {
	resumes, err := e.db.ListResumes()
	if err != nil {
		return nil, err
	}

	var match *model.Resume
	for i := range resumes {
		r := &resumes[i]
		if r.ID == ref || strings.EqualFold(r.Name, ref) {
			return r, nil
		}
		if strings.HasPrefix(r.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous resume %q", ref)
			}
			match = r
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no resume matching %q", ref)
	}
	return match, nil
}

func formatSize(n int64) string {
	switch {
	case n <= 0:
		return "-"
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
