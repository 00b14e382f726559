package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/grocerytracker/internal/core/ports"
	"github.com/AntonioJCosta/grocerytracker/internal/core/services/frequencytracking"
	"github.com/AntonioJCosta/grocerytracker/internal/core/testutil"
	"github.com/AntonioJCosta/grocerytracker/internal/repositories/itemfile"
	"github.com/rs/zerolog"
)

const scenarioInput = "Corn\nMilk\nCorn\nEggs\nMilk\nCorn\n"

// fileDeps wires the real file-backed service behind a fixed configuration.
func fileDeps(settings ports.Settings) Dependencies {
	return Dependencies{
		NewConfigProvider: func(string) ports.ConfigProvider {
			return &testutil.MockConfigProvider{
				LoadFunc: func() (ports.Settings, error) { return settings, nil },
			}
		},
		NewTrackingService: func(s ports.Settings, logger zerolog.Logger) (ports.FrequencyTrackingService, error) {
			src, err := itemfile.NewFileItemSource(s.InputFile)
			if err != nil {
				return nil, err
			}
			dst, err := itemfile.NewFileBackupDestination(s.BackupFile)
			if err != nil {
				return nil, err
			}
			return frequencytracking.NewService(src, dst, logger), nil
		},
	}
}

type commandRun struct {
	stdout string
	stderr string
	err    error
}

func executeRoot(t *testing.T, deps Dependencies, stdin string, args ...string) commandRun {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd := NewRootCommand("test", deps)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return commandRun{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write input %s: %v", path, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestRootCommand_InteractiveSession(t *testing.T) {
	dir := t.TempDir()
	inputPath := writeInput(t, dir, scenarioInput)
	backupPath := filepath.Join(dir, "frequency.dat")

	run := executeRoot(t, fileDeps(ports.Settings{}), "1\nMilk\n3\n4\n", "--input", inputPath, "--backup", backupPath)
	if run.err != nil {
		t.Fatalf("Execute() unexpected error = %v\nstderr: %s", run.err, run.stderr)
	}

	if got, want := readFile(t, backupPath), "Corn 3\nEggs 1\nMilk 2\n"; got != want {
		t.Errorf("backup content = %q, want %q", got, want)
	}
	for _, part := range []string{"Milk: 2\n", "HISTOGRAM\nCorn ***\nEggs *\nMilk **\n", "Exiting program."} {
		if !strings.Contains(run.stdout, part) {
			t.Errorf("stdout missing %q\nfull output:\n%s", part, run.stdout)
		}
	}
	if run.stderr != "" {
		t.Errorf("stderr = %q, want empty", run.stderr)
	}
}

func TestRootCommand_SessionCounts(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantBackup string
		wantList   string
		wantHist   string
	}{
		{
			name:       "equal counts",
			input:      "Corn\nMilk\n",
			wantBackup: "Corn 1\nMilk 1\n",
			wantList:   "FREQUENCY LIST\nCorn 1\nMilk 1\n",
			wantHist:   "HISTOGRAM\nCorn *\nMilk *\n",
		},
		{
			name:       "equal counts across many items",
			input:      "Eggs\nBread\nCorn\nMilk\nMilk\nEggs\nCorn\nBread\n",
			wantBackup: "Bread 2\nCorn 2\nEggs 2\nMilk 2\n",
			wantList:   "FREQUENCY LIST\nBread 2\nCorn 2\nEggs 2\nMilk 2\n",
			wantHist:   "HISTOGRAM\nBread **\nCorn **\nEggs **\nMilk **\n",
		},
		{
			name:       "single distinct item",
			input:      "Corn\nCorn\nCorn\n",
			wantBackup: "Corn 3\n",
			wantList:   "FREQUENCY LIST\nCorn 3\n",
			wantHist:   "HISTOGRAM\nCorn ***\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			inputPath := writeInput(t, dir, tt.input)
			backupPath := filepath.Join(dir, "frequency.dat")

			run := executeRoot(t, fileDeps(ports.Settings{}), "2\n3\n4\n", "--input", inputPath, "--backup", backupPath)
			if run.err != nil {
				t.Fatalf("Execute() unexpected error = %v\nstderr: %s", run.err, run.stderr)
			}
			if got := readFile(t, backupPath); got != tt.wantBackup {
				t.Errorf("backup content = %q, want %q", got, tt.wantBackup)
			}
			for _, part := range []string{tt.wantList, tt.wantHist} {
				if !strings.Contains(run.stdout, part) {
					t.Errorf("stdout missing %q\nfull output:\n%s", part, run.stdout)
				}
			}

			plain := executeRoot(t, fileDeps(ports.Settings{}), "", "list", "--plain", "--input", inputPath, "--backup", backupPath)
			if plain.err != nil {
				t.Fatalf("list --plain unexpected error = %v", plain.err)
			}
			if plain.stdout != tt.wantBackup {
				t.Errorf("list --plain stdout = %q, want %q", plain.stdout, tt.wantBackup)
			}
		})
	}
}

func TestRootCommand_MissingInputContinues(t *testing.T) {
	dir := t.TempDir()
	backupPath := filepath.Join(dir, "frequency.dat")

	run := executeRoot(t, fileDeps(ports.Settings{}), "2\n4\n",
		"--input", filepath.Join(dir, "missing.txt"), "--backup", backupPath)
	if run.err != nil {
		t.Fatalf("Execute() unexpected error = %v", run.err)
	}

	if !strings.Contains(run.stderr, "Error:") || !strings.Contains(run.stderr, "missing.txt") {
		t.Errorf("stderr = %q, want a diagnostic naming the input", run.stderr)
	}
	if !strings.Contains(run.stderr, "Continuing with 0 item(s).") {
		t.Errorf("stderr = %q, want continuation notice", run.stderr)
	}
	if got := strings.Count(run.stderr, "\n"); got != 2 {
		t.Errorf("stderr has %d lines, want the diagnostic and the notice only:\n%s", got, run.stderr)
	}
	if !strings.Contains(run.stdout, "No items were loaded.") {
		t.Errorf("stdout = %q, want empty list notice", run.stdout)
	}
	if got := readFile(t, backupPath); got != "" {
		t.Errorf("backup content = %q, want empty file", got)
	}
}

func TestRootCommand_BackupFailureContinues(t *testing.T) {
	dir := t.TempDir()
	inputPath := writeInput(t, dir, scenarioInput)

	run := executeRoot(t, fileDeps(ports.Settings{}), "1\nCorn\n4\n",
		"--input", inputPath, "--backup", filepath.Join(dir, "no-such-dir", "frequency.dat"))
	if run.err != nil {
		t.Fatalf("Execute() unexpected error = %v", run.err)
	}
	if !strings.Contains(run.stderr, "could not open backup") {
		t.Errorf("stderr = %q, want backup diagnostic", run.stderr)
	}
	if !strings.Contains(run.stdout, "Corn: 3") {
		t.Errorf("stdout = %q, want the menu to keep working", run.stdout)
	}
}

func TestSubcommands(t *testing.T) {
	dir := t.TempDir()
	inputPath := writeInput(t, dir, scenarioInput)
	backupPath := filepath.Join(dir, "frequency.dat")
	common := []string{"--input", inputPath, "--backup", backupPath}

	tests := []struct {
		name       string
		args       []string
		wantStdout []string
		wantExact  string
	}{
		{name: "query found", args: []string{"query", "Corn"}, wantExact: "Corn: 3\n"},
		{name: "query not found", args: []string{"query", "Bread"}, wantExact: "Bread not found in the grocery list.\n"},
		{name: "query is case sensitive", args: []string{"query", "corn"}, wantExact: "corn not found in the grocery list.\n"},
		{name: "list plain", args: []string{"list", "--plain"}, wantExact: "Corn 3\nEggs 1\nMilk 2\n"},
		{name: "list table", args: []string{"list"}, wantStdout: []string{"Item Frequencies:", "Item", "Count", "Corn", "Eggs", "Milk", "Total", "6"}},
		{name: "histogram", args: []string{"histogram"}, wantExact: "Corn ***\nEggs *\nMilk **\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := executeRoot(t, fileDeps(ports.Settings{}), "", append(tt.args, common...)...)
			if run.err != nil {
				t.Fatalf("Execute() unexpected error = %v\nstderr: %s", run.err, run.stderr)
			}
			if tt.wantExact != "" && run.stdout != tt.wantExact {
				t.Errorf("stdout = %q, want %q", run.stdout, tt.wantExact)
			}
			for _, part := range tt.wantStdout {
				if !strings.Contains(run.stdout, part) {
					t.Errorf("stdout missing %q\nfull output:\n%s", part, run.stdout)
				}
			}
		})
	}

	if _, err := os.Stat(backupPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("read-only subcommands created a backup file (stat error = %v)", err)
	}
}

func TestBackupCommand(t *testing.T) {
	dir := t.TempDir()
	inputPath := writeInput(t, dir, scenarioInput)

	t.Run("success", func(t *testing.T) {
		backupPath := filepath.Join(dir, "frequency.dat")
		run := executeRoot(t, fileDeps(ports.Settings{}), "", "backup", "--input", inputPath, "--backup", backupPath)
		if run.err != nil {
			t.Fatalf("Execute() unexpected error = %v", run.err)
		}
		if !strings.Contains(run.stdout, "3 item(s) written to") {
			t.Errorf("stdout = %q, want success message", run.stdout)
		}
		if got, want := readFile(t, backupPath), "Corn 3\nEggs 1\nMilk 2\n"; got != want {
			t.Errorf("backup content = %q, want %q", got, want)
		}
	})

	t.Run("failure exits with error", func(t *testing.T) {
		run := executeRoot(t, fileDeps(ports.Settings{}), "", "backup",
			"--input", inputPath, "--backup", filepath.Join(dir, "missing", "frequency.dat"))
		if run.err == nil {
			t.Fatal("Execute() expected error, got nil")
		}
		if !strings.Contains(run.err.Error(), "backup failed") {
			t.Errorf("Execute() error = %v, want backup failure", run.err)
		}
	})
}

func TestRootCommand_SettingsResolution(t *testing.T) {
	fromConfig := ports.Settings{InputFile: "config-input.txt", BackupFile: "config-backup.dat", LogLevel: "info"}

	tests := []struct {
		name string
		args []string
		want ports.Settings
	}{
		{
			name: "config values used without flags",
			args: []string{"query", "x"},
			want: fromConfig,
		},
		{
			name: "flags override config",
			args: []string{"query", "x", "-i", "flag-input.txt", "-b", "flag-backup.dat", "--log-level", "error"},
			want: ports.Settings{InputFile: "flag-input.txt", BackupFile: "flag-backup.dat", LogLevel: "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ports.Settings
			var gotConfigPath string
			deps := Dependencies{
				NewConfigProvider: func(path string) ports.ConfigProvider {
					gotConfigPath = path
					return &testutil.MockConfigProvider{
						LoadFunc: func() (ports.Settings, error) { return fromConfig, nil },
					}
				},
				NewTrackingService: func(s ports.Settings, _ zerolog.Logger) (ports.FrequencyTrackingService, error) {
					got = s
					return &testutil.MockFrequencyTrackingService{}, nil
				},
			}

			run := executeRoot(t, deps, "", append(tt.args, "--config", "custom.yaml")...)
			if run.err != nil {
				t.Fatalf("Execute() unexpected error = %v", run.err)
			}
			if got != tt.want {
				t.Errorf("settings = %+v, want %+v", got, tt.want)
			}
			if gotConfigPath != "custom.yaml" {
				t.Errorf("config path = %q, want %q", gotConfigPath, "custom.yaml")
			}
		})
	}
}

func TestRootCommand_InitializationErrors(t *testing.T) {
	configErr := errors.New("bad yaml")

	tests := []struct {
		name    string
		deps    Dependencies
		args    []string
		wantErr string
	}{
		{
			name:    "missing dependencies",
			deps:    Dependencies{},
			args:    []string{"list"},
			wantErr: "dependencies not initialized",
		},
		{
			name: "config failure",
			deps: Dependencies{
				NewConfigProvider: func(string) ports.ConfigProvider {
					return &testutil.MockConfigProvider{
						LoadFunc: func() (ports.Settings, error) { return ports.Settings{}, configErr },
					}
				},
				NewTrackingService: func(ports.Settings, zerolog.Logger) (ports.FrequencyTrackingService, error) {
					return &testutil.MockFrequencyTrackingService{}, nil
				},
			},
			args:    []string{"list"},
			wantErr: "could not load configuration",
		},
		{
			name:    "invalid log level",
			deps:    fileDeps(ports.Settings{}),
			args:    []string{"list", "--log-level", "chatty"},
			wantErr: "invalid log level",
		},
		{
			name: "service construction failure",
			deps: Dependencies{
				NewConfigProvider: func(string) ports.ConfigProvider { return &testutil.MockConfigProvider{} },
				NewTrackingService: func(ports.Settings, zerolog.Logger) (ports.FrequencyTrackingService, error) {
					return nil, errors.New("input file path cannot be empty")
				},
			},
			args:    []string{"list"},
			wantErr: "could not initialize frequency tracking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := executeRoot(t, tt.deps, "", tt.args...)
			if run.err == nil {
				t.Fatal("Execute() expected error, got nil")
			}
			if !strings.Contains(run.err.Error(), tt.wantErr) {
				t.Errorf("Execute() error = %q, want it to contain %q", run.err.Error(), tt.wantErr)
			}
		})
	}
}

func TestRootCommand_StartupOrder(t *testing.T) {
	var calls []string
	svc := &testutil.MockFrequencyTrackingService{
		LoadItemsFunc: func() (ports.LoadResult, error) {
			calls = append(calls, "load")
			return ports.LoadResult{Store: &testutil.MockFrequencyStore{}}, nil
		},
		BackupFunc: func(ports.FrequencyStore) (string, error) {
			calls = append(calls, "backup")
			return "mock", nil
		},
	}
	deps := Dependencies{
		NewConfigProvider: func(string) ports.ConfigProvider { return &testutil.MockConfigProvider{} },
		NewTrackingService: func(ports.Settings, zerolog.Logger) (ports.FrequencyTrackingService, error) {
			return svc, nil
		},
	}

	run := executeRoot(t, deps, "4\n")
	if run.err != nil {
		t.Fatalf("Execute() unexpected error = %v", run.err)
	}
	if strings.Join(calls, ",") != "load,backup" {
		t.Errorf("startup calls = %v, want [load backup]", calls)
	}
}
