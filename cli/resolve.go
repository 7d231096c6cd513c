package cli

import (
	"fmt"

	"github.com/dmleach/frock/config"
	"github.com/dmleach/frock/models"
	"github.com/dmleach/frock/services"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <role> [path]",
	Short: "Print the class name a path resolves to",
	Long: `Print the class name a role/path pair resolves to and whether it is registered.
Roles: controller, model, view. Without a path the default path is used.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runResolve,
}

var runCmd = &cobra.Command{
	Use:   "run <role> [path]",
	Short: "Instantiate and execute a class without HTTP",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(runCmd)
}

// offlineService is a dispatch service without journal, cache or Redis log.
func offlineService() (services.DispatchService, *config.Config, error) {
	cfg := config.Load(cfgFile)
	reg, err := buildRegistry(cfg)
	if err != nil {
		return nil, nil, err
	}
	return services.NewDispatchService(reg, nil, nil, nil, frockOptions(cfg)...), cfg, nil
}

func roleAndPath(args []string) (models.Role, string, error) {
	role, ok := models.ParseRole(args[0])
	if !ok {
		return "", "", fmt.Errorf("%w: %q", services.ErrUnknownRole, args[0])
	}
	path := ""
	if len(args) > 1 {
		path = args[1]
	}
	return role, path, nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	role, path, err := roleAndPath(args)
	if err != nil {
		return err
	}
	svc, _, err := offlineService()
	if err != nil {
		return err
	}
	res, err := svc.Resolve(role, path)
	if err != nil {
		return err
	}
	status := "not registered"
	if res.Registered {
		status = "registered"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(%s)\n", res.Path, res.ClassName, status)
	return nil
}

func runRun(cmd *cobra.Command, args []string) error {
	role, path, err := roleAndPath(args)
	if err != nil {
		return err
	}
	svc, cfg, err := offlineService()
	if err != nil {
		return err
	}
	req := models.Request{}
	if path != "" {
		req[cfg.PathKey()] = path
	}
	rec, err := svc.Dispatch(role, req, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "executed %s in %dms\n", rec.ClassName, rec.DurationMS)
	return nil
}
