package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallgrass-systems/jobfunnel/internal/model"
	"github.com/tallgrass-systems/jobfunnel/internal/output"
)

var (
	addTitle   string
	addCompany string
	addStage   string
	addResume  string
	addNotes   string

	listStage   string
	listCompany string
	listSort    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a job application",
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
	RunE:  runList,
}

var setStageCmd = &cobra.Command{
	Use:   "set-stage <application-id> <stage>",
	Short: "Move an application through the pipeline",
	Args:  cobra.ExactArgs(2),
	RunE:  runSetStage,
}

var rmCmd = &cobra.Command{
	Use:   "rm <application-id>",
	Short: "Delete an application permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Job title (required)")
	addCmd.Flags().StringVar(&addCompany, "company", "", "Company name (required)")
	addCmd.Flags().StringVar(&addStage, "stage", "", "Initial pipeline stage (default: first stage)")
	addCmd.Flags().StringVar(&addResume, "resume", "", "Resume ID or name to link")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Free-form notes")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("company")

	listCmd.Flags().StringVar(&listStage, "stage", "", "Filter by pipeline stage")
	listCmd.Flags().StringVar(&listCompany, "company", "", "Filter by company (substring match)")
	listCmd.Flags().StringVar(&listSort, "sort", "created", "Sort order: created, company, stage")

	rootCmd.AddCommand(addCmd, listCmd, setStageCmd, rmCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	stage := e.pipe.Initial()
	if addStage != "" {
		stage, err = e.pipe.ParseStage(addStage)
		if err != nil {
			return err
		}
	}

	a := &model.Application{
		JobTitle: addTitle,
		Company:  addCompany,
		Stage:    stage,
		Notes:    addNotes,
	}

	if addResume != "" {
		r, err := resolveResume(e, addResume)
		if err != nil {
			return err
		}
		a.ResumeID = r.ID
	}

	if err := e.db.InsertApplication(a); err != nil {
		return fmt.Errorf("saving application: %w", err)
	}

	fmt.Printf("Recorded %s at %s (%s) id %s\n",
		output.StyleBold.Render(a.JobTitle), a.Company, a.Stage, shortID(a.ID))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	apps, err := e.db.ListApplications()
	if err != nil {
		return fmt.Errorf("listing applications: %w", err)
	}

	if listStage != "" {
		stage, err := e.pipe.ParseStage(listStage)
		if err != nil {
			return err
		}
		apps = filterApps(apps, func(a model.Application) bool { return a.Stage == stage })
	}
	if listCompany != "" {
		needle := strings.ToLower(listCompany)
		apps = filterApps(apps, func(a model.Application) bool {
			return strings.Contains(strings.ToLower(a.Company), needle)
		})
	}

	switch listSort {
	case "company":
		sort.SliceStable(apps, func(i, j int) bool { return apps[i].Company < apps[j].Company })
	case "stage":
		sort.SliceStable(apps, func(i, j int) bool { return apps[i].Stage < apps[j].Stage })
	case "created", "":
		// ListApplications already returns most recent first.
	default:
		return fmt.Errorf("unknown sort order %q (want created, company, or stage)", listSort)
	}

	if flagJSON {
		return printJSON(apps)
	}

	if len(apps) == 0 {
		fmt.Println("No applications found.")
		return nil
	}

	resumeNames, err := resumeNameIndex(e)
	if err != nil {
		return err
	}

	tbl := output.NewTable("ID", "TITLE", "COMPANY", "STAGE", "RESUME", "UPDATED")
	for _, a := range apps {
		resume := "-"
		if a.HasResume() {
			if name, ok := resumeNames[a.ResumeID]; ok {
				resume = name
			} else {
				resume = shortID(a.ResumeID) + " (missing)"
			}
		}
		tbl.AddRow(shortID(a.ID), a.JobTitle, a.Company, string(a.Stage), resume, a.UpdatedAt.Format("2006-01-02"))
	}
	tbl.Print()
	return nil
}

func runSetStage(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	a, err := findApplication(e, args[0])
	if err != nil {
		return err
	}
	stage, err := e.pipe.ParseStage(args[1])
	if err != nil {
		return err
	}

	if err := e.db.SetApplicationStage(a.ID, stage); err != nil {
		return fmt.Errorf("updating stage: %w", err)
	}
	fmt.Printf("%s at %s: %s → %s\n", a.JobTitle, a.Company, a.Stage, stage)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	a, err := findApplication(e, args[0])
	if err != nil {
		return err
	}
	if err := e.db.DeleteApplication(a.ID); err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}
	fmt.Printf("Deleted %s at %s\n", a.JobTitle, a.Company)
	return nil
}

// findApplication resolves an application by full ID or unambiguous prefix.
func findApplication(e *env, ref string) (*model.Application, error) {
	apps, err := e.db.ListApplications()
	if err != nil {
		return nil, err
	}

	var match *model.Application
	for i := range apps {
		if apps[i].ID == ref {
			return &apps[i], nil
		}
		if strings.HasPrefix(apps[i].ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous application id %q", ref)
			}
			match = &apps[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no application matching %q", ref)
	}
	return match, nil
}

func filterApps(apps []model.Application, keep func(model.Application) bool) []model.Application {
	var out []model.Application
	for _, a := range apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func resumeNameIndex(e *env) (map[string]string, error) {
	resumes, err := e.db.ListResumes()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(resumes))
	for _, r := range resumes {
		names[r.ID] = r.Name
	}
	return names, nil
}

// shortID returns the first ID segment, enough to identify records in a
// personal-scale database.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
