package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/mmrzaf/mockgen/internal/config"
	"github.com/mmrzaf/mockgen/internal/domain"
	"github.com/mmrzaf/mockgen/internal/hashing"
	"github.com/mmrzaf/mockgen/internal/infra/repos/mocks"
	"github.com/mmrzaf/mockgen/internal/logging"
	"github.com/mmrzaf/mockgen/internal/mock"
	"github.com/mmrzaf/mockgen/internal/registry"
	"github.com/mmrzaf/mockgen/internal/validation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	mocksDir       string
	generatorsFile string
	logLevel       string
	seed           int64
	hasSeed        bool
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "mockgen",
		Short:         "Rule-driven mock data generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			hasSeed = cmd.Flags().Changed("seed")
			if !hasSeed && cfg.Seed != nil {
				seed, hasSeed = *cfg.Seed, true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&mocksDir, "mocks-dir", cfg.MocksDir, "Mock definitions directory")
	rootCmd.PersistentFlags().StringVar(&generatorsFile, "generators-file", cfg.GeneratorsFile, "YAML file listing generator families to register")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for reproducible output")

	rootCmd.AddCommand(produceCmd())
	rootCmd.AddCommand(generatorsCmd())
	rootCmd.AddCommand(mocksCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(renderCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup builds the registry and checks it for overlapping generators.
func setup() (*registry.GeneratorRegistry, *logging.Logger, error) {
	logger := logging.NewLogger(logLevel).WithComponent("cli")

	genRegistry, err := registry.LoadFile(generatorsFile)
	if err != nil {
		return nil, nil, err
	}
	if err := validation.NewValidator(genRegistry).ValidateRegistry(); err != nil {
		logger.Errorw("registry.invalid", map[string]any{"error": err.Error()})
		return nil, nil, err
	}
	logger.Debugw("registry.ready", map[string]any{
		"generators": len(genRegistry.List()),
		"seeded":     hasSeed,
	})
	return genRegistry, logger, nil
}

// newDispatcher seeds the dispatcher from --seed. A non-empty key derives a
// separate stream so a mock renders the same regardless of what ran before it.
func newDispatcher(genRegistry *registry.GeneratorRegistry, logger *logging.Logger, key string) *mock.Dispatcher {
	opts := []mock.Option{mock.WithLogger(logger)}
	if hasSeed {
		s := seed
		if key != "" {
			s = hashing.DeriveSeed(seed, key)
		}
		opts = append(opts, mock.WithSeed(s))
	}
	return mock.NewDispatcher(genRegistry, opts...)
}

func produceCmd() *cobra.Command {
	var count int
	var format string

	cmd := &cobra.Command{
		Use:   "produce <rule>",
		Short: "Generate values for a rule such as en|3-9",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be > 0, got %d", count)
			}
			genRegistry, logger, err := setup()
			if err != nil {
				return err
			}
			dispatcher := newDispatcher(genRegistry, logger, "")

			values := make([]interface{}, 0, count)
			for i := 0; i < count; i++ {
				v, err := dispatcher.Produce(args[0])
				if err != nil {
					return err
				}
				values = append(values, v)
			}

			switch format {
			case "json":
				data, err := json.MarshalIndent(values, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
			case "text":
				for _, v := range values {
					fmt.Println(mock.FormatValue(v))
				}
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of values to generate")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text|json)")
	return cmd
}

func generatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generators",
		Short: "Inspect registered generators",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List generators in resolution order",
		RunE: func(cmd *cobra.Command, args []string) error {
			genRegistry, _, err := setup()
			if err != nil {
				return err
			}
			list := genRegistry.List()

			switch format {
			case "json":
				data, _ := json.MarshalIndent(list, "", "  ")
				fmt.Println(string(data))
				return nil
			case "yaml":
				data, _ := yaml.Marshal(list)
				fmt.Print(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPARAMS\tEXAMPLE")
			for _, g := range list {
				example := ""
				if len(g.Examples) > 0 {
					example = g.Examples[0]
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", g.Name, g.ParamSize, example)
			}
			w.Flush()
			return nil
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json|yaml)")

	cmd.AddCommand(listCmd)
	return cmd
}

func mocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mocks",
		Short: "Inspect mock definitions",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List mock definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := mockRepo().List()
			if err != nil {
				return err
			}

			if format == "json" {
				data, _ := json.MarshalIndent(list, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS\tPLACEHOLDERS\tHASH")
			for _, m := range list {
				h, err := hashing.HashMock(m)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
					m.ID, m.Name, m.ContentType, m.Status, len(mock.Placeholders(m.Body)), h[:12])
			}
			w.Flush()
			return nil
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <id|path>",
		Short: "Show a mock definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadMock(mockRepo(), args[0])
			if err != nil {
				return err
			}
			data, _ := yaml.Marshal(def)
			fmt.Print(string(data))
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [id|path]",
		Short: "Validate the generator registry and mock definitions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genRegistry, logger, err := setup()
			if err != nil {
				return err
			}
			validator := validation.NewValidator(genRegistry)
			repo := mockRepo()

			if len(args) == 1 {
				def, err := loadMock(repo, args[0])
				if err != nil {
					return err
				}
				if err := validator.ValidateMock(def); err != nil {
					fmt.Printf("Validation failed: %v\n", err)
					return err
				}
				fmt.Printf("Mock '%s' is valid\n", def.ID)
				return nil
			}

			defs, err := repo.List()
			if err != nil {
				return err
			}
			if len(defs) == 0 {
				logger.Warnw("mocks.empty", map[string]any{"dir": mocksDir})
			}
			if err := validator.ValidateMocks(defs); err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return err
			}
			logger.Infow("mocks.validated", map[string]any{
				"dir":        mocksDir,
				"mocks":      len(defs),
				"generators": len(genRegistry.List()),
			})
			fmt.Printf("%d generators and %d mocks are valid\n", len(genRegistry.List()), len(defs))
			return nil
		},
	}
}

func renderCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "render <id|path>",
		Short: "Render a mock definition with generated values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genRegistry, logger, err := setup()
			if err != nil {
				return err
			}
			def, err := loadMock(mockRepo(), args[0])
			if err != nil {
				return err
			}
			dispatcher := newDispatcher(genRegistry, logger, def.ID)
			if err := validation.NewValidator(genRegistry).ValidateMock(def); err != nil {
				return err
			}

			var body string
			if def.ContentType == domain.ContentTypeJSON {
				body, err = dispatcher.RenderJSON(def.Body)
			} else {
				body, err = dispatcher.Render(def.Body)
			}
			if err != nil {
				return err
			}
			logger.Debugw("mock.rendered", map[string]any{"mock": def.ID, "bytes": len(body)})

			out := domain.RenderedMock{
				ID:          def.ID,
				ContentType: def.ContentType,
				Status:      def.Status,
				Body:        body,
			}
			switch format {
			case "body":
				fmt.Println(out.Body)
			case "json":
				data, _ := json.MarshalIndent(out, "", "  ")
				fmt.Println(string(data))
			case "yaml":
				data, _ := yaml.Marshal(out)
				fmt.Print(string(data))
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "body", "Output format (body|json|yaml)")
	return cmd
}

func mockRepo() mocks.Repository {
	return mocks.NewFileRepository(mocksDir)
}

func loadMock(repo mocks.Repository, ref string) (*domain.MockDefinition, error) {
	if strings.Contains(ref, "/") {
		abs, err := filepath.Abs(ref)
		if err != nil {
			return nil, err
		}
		return repo.GetByPath(abs)
	}
	if strings.HasSuffix(ref, ".yaml") || strings.HasSuffix(ref, ".yml") || strings.HasSuffix(ref, ".json") {
		return repo.GetByPath(ref)
	}
	return repo.Get(ref)
}
