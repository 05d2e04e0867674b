package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/somchaipk/schoolfin/cmd/approve"
	"github.com/somchaipk/schoolfin/cmd/ledger"
	"github.com/somchaipk/schoolfin/cmd/request"
	"github.com/somchaipk/schoolfin/cmd/user"
	"github.com/somchaipk/schoolfin/internal/app"
	"github.com/somchaipk/schoolfin/internal/config"
	"github.com/somchaipk/schoolfin/internal/errhandler"
	"github.com/somchaipk/schoolfin/internal/service"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	defer cleanup()

	if err := initUsers(application.Service); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "schoolfin",
		Short: "schoolfin is a CLI tool for school expense approvals and fund registers",
		Long: `schoolfin tracks staff expense requests through a two-signature approval
workflow (finance officer + school director) and posts approved requests
into the school's fund registers with audit history and export.`,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringP("user", "u", "", "username to act as (prompted if omitted)")

	rootCmd.AddCommand(user.NewUserCmd(application.Service))
	rootCmd.AddCommand(request.NewRequestCmd(application.Service))
	rootCmd.AddCommand(approve.NewApproveCmd(application.Service))
	rootCmd.AddCommand(ledger.NewLedgerCmd(application.Service))

	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		errhandler.HandleError(err)
	}
}

// initUsers seeds the default role accounts the first time the tool runs
// against an empty database.
func initUsers(svc *service.Service) error {
	seeded, err := svc.Account.EnsureDefaultUsers()
	if err != nil {
		return fmt.Errorf("failed to seed default users: %w", err)
	}
	if seeded {
		pterm.Info.Println("Created default teacher/director/finance accounts (password: pass1234)")
	}
	return nil
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to ensure config file: %w", err)
	}

	viper.SetEnvPrefix("SCHOOLFIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".schoolfin"), nil
	}

	return filepath.Join(configDir, "schoolfin"), nil
}

func createDefaultConfig() error {
	appDir, err := getAppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
