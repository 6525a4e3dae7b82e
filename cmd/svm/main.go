package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nguyendan07/seminary-management-system/internal/app"
	"github.com/nguyendan07/seminary-management-system/internal/config"
	"github.com/nguyendan07/seminary-management-system/internal/svm"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "add", "export").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// studentFlags registers the record field flags shared by add and update.
func studentFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("birth-date", "", "Birth date in DD/MM/YYYY format")
	cmd.Flags().String("hometown", "", "Hometown")
	cmd.Flags().String("parish", "", "Parish")
	cmd.Flags().String("diocese", "", "Diocese")
}

// printStudentLine writes one record as a single aligned row.
func printStudentLine(st svm.Student) {
	fmt.Printf("%-8s  %-24s  %-10s  %-16s  %-20s  %s\n",
		st.ID, st.Name, st.BirthDate, st.Hometown, st.Parish, st.Diocese)
}

// printStudentList writes a slice of records, or a placeholder when empty.
func printStudentList(students []svm.Student) {
	if len(students) == 0 {
		fmt.Println("No students found.")
		return
	}
	for _, st := range students {
		printStudentLine(st)
	}
	fmt.Printf("\n%d student(s)\n", len(students))
}

// readPassphrase prompts for a passphrase without echo. When confirm is true
// the passphrase must be entered twice.
func readPassphrase(confirm bool) (string, error) {
	fmt.Fprint(os.Stderr, "Passphrase: ")
	p, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	if len(p) == 0 {
		return "", fmt.Errorf("passphrase must not be empty")
	}

	if confirm {
		fmt.Fprint(os.Stderr, "Confirm passphrase: ")
		p2, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}
		if string(p) != string(p2) {
			return "", fmt.Errorf("passphrases do not match")
		}
	}

	return string(p), nil
}

var rootCmd = &cobra.Command{
	Use:   "svm",
	Short: "Seminary student record manager",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get application defaults
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Create config with defaults
		cfg := config.NewConfig(defaults["base_dir"])

		// Initialize config file
		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir:   %s\n", cfg.BaseDir)
		fmt.Printf("Store Type: %s\n", cfg.Store.Type)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get application defaults
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Read config
		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		// Display config
		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Base Dir:     %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:      %s\n", cfg.LogDir)
		fmt.Printf("Store Type:   %s\n", cfg.Store.Type)
		fmt.Printf("Store Path:   %s\n", cfg.Store.Path)
		fmt.Printf("Session Path: %s\n", cfg.Session.Path)
		return nil
	},
}

// list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all students",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("list")
		if err != nil {
			return err
		}
		defer a.Close()

		printStudentList(a.Students())
		return nil
	},
}

// show command
var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one student record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("show")
		if err != nil {
			return err
		}
		defer a.Close()

		st, err := a.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:         %s\n", st.ID)
		fmt.Printf("Name:       %s\n", st.Name)
		fmt.Printf("Birth Date: %s\n", st.BirthDate)
		fmt.Printf("Age:        %d\n", st.AgeAt(time.Now()))
		fmt.Printf("Hometown:   %s\n", st.Hometown)
		fmt.Printf("Parish:     %s\n", st.Parish)
		fmt.Printf("Diocese:    %s\n", st.Diocese)
		return nil
	},
}

// add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a student record",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("add")
		if err != nil {
			return err
		}
		defer a.Close()

		id, _ := cmd.Flags().GetString("id")
		name, _ := cmd.Flags().GetString("name")
		birthDate, _ := cmd.Flags().GetString("birth-date")
		hometown, _ := cmd.Flags().GetString("hometown")
		parish, _ := cmd.Flags().GetString("parish")
		diocese, _ := cmd.Flags().GetString("diocese")

		st, err := a.Add(svm.Student{
			ID:        id,
			Name:      name,
			BirthDate: birthDate,
			Hometown:  hometown,
			Parish:    parish,
			Diocese:   diocese,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added %s (%s)\n", st.ID, st.Name)
		return nil
	},
}

// update command
var updateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a student record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("update")
		if err != nil {
			return err
		}
		defer a.Close()

		st, err := a.Get(args[0])
		if err != nil {
			return err
		}

		// Only fields whose flag was set are touched.
		if cmd.Flags().Changed("name") {
			st.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("birth-date") {
			st.BirthDate, _ = cmd.Flags().GetString("birth-date")
		}
		if cmd.Flags().Changed("hometown") {
			st.Hometown, _ = cmd.Flags().GetString("hometown")
		}
		if cmd.Flags().Changed("parish") {
			st.Parish, _ = cmd.Flags().GetString("parish")
		}
		if cmd.Flags().Changed("diocese") {
			st.Diocese, _ = cmd.Flags().GetString("diocese")
		}

		updated, err := a.Update(args[0], st)
		if err != nil {
			return err
		}

		fmt.Printf("Updated %s (%s)\n", updated.ID, updated.Name)
		return nil
	},
}

// delete command
var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a student record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("delete")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Delete(args[0]); err != nil {
			return err
		}

		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

// search command
var searchCmd = &cobra.Command{
	Use:   "search [QUERY]",
	Short: "Search students by id, name, or place",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("search")
		if err != nil {
			return err
		}
		defer a.Close()

		query := strings.Join(args, " ")
		printStudentList(a.Search(query))
		return nil
	},
}

// filter command
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter students by diocese, parish, or hometown",
	RunE: func(cmd *cobra.Command, args []string) error {
		diocese, _ := cmd.Flags().GetString("diocese")
		parish, _ := cmd.Flags().GetString("parish")
		hometown, _ := cmd.Flags().GetString("hometown")

		a, err := newApp("filter")
		if err != nil {
			return err
		}
		defer a.Close()

		var results []svm.Student
		switch {
		case diocese != "":
			results = a.FilterByDiocese(diocese)
		case parish != "":
			results = a.FilterByParish(parish)
		case hometown != "":
			results = a.FilterByHometown(hometown)
		default:
			return fmt.Errorf("one of --diocese, --parish, or --hometown is required")
		}

		printStudentList(results)
		return nil
	},
}

// stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("stats")
		if err != nil {
			return err
		}
		defer a.Close()

		stats := a.Statistics()
		fmt.Printf("Total students: %d\n", stats.TotalStudents)
		printDistribution("diocese", stats.UniqueDioceses, stats.DioceseDistribution)
		printDistribution("parish", stats.UniqueParishes, stats.ParishDistribution)
		printDistribution("hometown", stats.UniqueHometowns, stats.HometownDistribution)
		return nil
	},
}

// printDistribution writes one distribution block with keys in sorted order.
func printDistribution(label string, unique int, dist map[string]int) {
	fmt.Printf("\nBy %s (%d distinct):\n", label, unique)
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-24s %d\n", k, dist[k])
	}
}

// next-id command
var nextIDCmd = &cobra.Command{
	Use:   "next-id",
	Short: "Show the next free student id",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("next-id")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Println(a.NextID())
		return nil
	},
}

// export command
var exportCmd = &cobra.Command{
	Use:   "export PATH",
	Short: "Export students to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("export")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.ExportCSV(args[0]); err != nil {
			return err
		}

		fmt.Printf("Exported %d student(s) to %s\n", a.Count(), args[0])
		return nil
	},
}

// login command
var loginCmd = &cobra.Command{
	Use:   "login EMAIL",
	Short: "Start a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("login")
		if err != nil {
			return err
		}
		defer a.Close()

		sess, err := a.Login(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (session expires %s)\n",
			sess.UserEmail, sess.ExpiresAt.Format("2006-01-02 15:04"))
		return nil
	},
}

// logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("logout")
		if err != nil {
			return err
		}
		defer a.Close()

		sess, err := a.CurrentSession()
		if err != nil {
			return err
		}
		if sess == nil {
			fmt.Println("Not logged in.")
			return nil
		}

		if err := a.Logout(); err != nil {
			return err
		}

		fmt.Printf("Logged out %s\n", sess.UserEmail)
		return nil
	},
}

// whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("whoami")
		if err != nil {
			return err
		}
		defer a.Close()

		sess, err := a.CurrentSession()
		if err != nil {
			return err
		}
		if sess == nil {
			fmt.Println("Not logged in.")
			return nil
		}

		fmt.Printf("%s (session expires %s)\n",
			sess.UserEmail, sess.ExpiresAt.Format("2006-01-02 15:04"))
		return nil
	},
}

// backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage encrypted backups",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create [PATH]",
	Short: "Write an encrypted backup",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			path = fmt.Sprintf("svm-backup-%s.age", time.Now().UTC().Format("20060102-150405"))
		}

		passphrase, err := readPassphrase(true)
		if err != nil {
			return err
		}

		a, err := newApp("backup-create")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.BackupCreate(path, passphrase); err != nil {
			return err
		}

		fmt.Printf("Backed up %d student(s) to %s\n", a.Count(), path)
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore PATH",
	Short: "Restore from an encrypted backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		passphrase, err := readPassphrase(false)
		if err != nil {
			return err
		}

		a, err := newApp("backup-restore")
		if err != nil {
			return err
		}
		defer a.Close()

		count, err := a.BackupRestore(args[0], passphrase)
		if err != nil {
			return err
		}

		fmt.Printf("Restored %d student(s) from %s\n", count, args[0])
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// backup subcommands
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)

	// record field flags
	addCmd.Flags().String("id", "", "Student id (defaults to the next free id)")
	studentFlags(addCmd)
	studentFlags(updateCmd)

	// filter flags
	filterCmd.Flags().String("diocese", "", "Filter by diocese")
	filterCmd.Flags().String("parish", "", "Filter by parish")
	filterCmd.Flags().String("hometown", "", "Filter by hometown")

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(nextIDCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(backupCmd)
}
