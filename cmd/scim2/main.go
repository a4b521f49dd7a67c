package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	scim2 "github.com/scim-tools/scim2"
	"github.com/scim-tools/scim2/pkg/config"
	"github.com/scim-tools/scim2/pkg/version"
)

var (
	flagConfigPath string
	flagResource   string
	flagStrict     bool
)

var rootCmd = &cobra.Command{
	Use:           "scim2 [flags]",
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scim2 %s\n", version.GetInfo().Version)
	},
}

var cmdValidate = &cobra.Command{
	Use:   "validate [files]",
	Short: "Decode SCIM documents and check their required attributes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args, false)
	},
}

var cmdNormalize = &cobra.Command{
	Use:   "normalize [files]",
	Short: "Decode SCIM documents and re-encode them in canonical wire form",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args, true)
	},
}

// nolint: gochecknoinits
func init() {
	for _, cmd := range []*cobra.Command{cmdValidate, cmdNormalize} {
		cmd.Flags().StringVarP(&flagConfigPath, "config", "c", "", "config path")
		cmd.Flags().StringVarP(&flagResource, "resource", "r", "", "resource kind (user, group, resource-type, service-provider-config, enterprise-user)")
		cmd.Flags().BoolVar(&flagStrict, "strict", false, "reject unknown attributes")
		rootCmd.AddCommand(cmd)
	}
}

func main() {
	rootCmd.AddCommand(
		versionCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err.Error())
	}
}

func run(args []string, normalize bool) error {
	cfg, err := config.NewConfig(flagConfigPath)
	if err != nil {
		return err
	}

	kind := cfg.Decode.Resource
	if flagResource != "" {
		kind = flagResource
	}

	strict := cfg.Decode.Strict || flagStrict

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(cfg.Logging.LogLevelParsed)

	for _, path := range args {
		fileLogger := logger.With().
			Str("component", lo.Ternary(normalize, "normalize", "validate")).
			Str("file", path).
			Str("resource", kind).
			Logger()

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read '%s'", path)
		}

		normalized, err := processDocument(kind, string(data), strict)
		if err != nil {
			fileLogger.Err(err).Msg("invalid document")
			return err
		}

		fileLogger.Info().Msg("document is valid")

		if normalize {
			fmt.Println(normalized)
		}
	}

	return nil
}

// processDocument decodes, validates and re-encodes a single document.
func processDocument(kind, document string, strict bool) (string, error) {
	switch kind {
	case config.ResourceUser:
		user, err := lo.Ternary(strict, scim2.UserFromJSONStrict, scim2.UserFromJSON)(document)
		if err != nil {
			return "", err
		}

		if err := scim2.ValidateUser(user); err != nil {
			return "", err
		}

		return scim2.UserToJSON(user)
	case config.ResourceGroup:
		group, err := lo.Ternary(strict, scim2.GroupFromJSONStrict, scim2.GroupFromJSON)(document)
		if err != nil {
			return "", err
		}

		if err := scim2.ValidateGroup(group); err != nil {
			return "", err
		}

		return scim2.GroupToJSON(group)
	case config.ResourceResourceType:
		resourceType, err := lo.Ternary(strict, scim2.ResourceTypeFromJSONStrict, scim2.ResourceTypeFromJSON)(document)
		if err != nil {
			return "", err
		}

		if err := scim2.ValidateResourceType(resourceType); err != nil {
			return "", err
		}

		return scim2.ResourceTypeToJSON(resourceType)
	case config.ResourceServiceProviderConfig:
		spc, err := lo.Ternary(strict, scim2.ServiceProviderConfigFromJSONStrict, scim2.ServiceProviderConfigFromJSON)(document)
		if err != nil {
			return "", err
		}

		if err := scim2.ValidateServiceProviderConfig(spc); err != nil {
			return "", err
		}

		return scim2.ServiceProviderConfigToJSON(spc)
	case config.ResourceEnterpriseUser:
		enterpriseUser, err := lo.Ternary(strict, scim2.EnterpriseUserFromJSONStrict, scim2.EnterpriseUserFromJSON)(document)
		if err != nil {
			return "", err
		}

		if err := scim2.ValidateEnterpriseUser(enterpriseUser); err != nil {
			return "", err
		}

		return scim2.EnterpriseUserToJSON(enterpriseUser)
	default:
		return "", errors.Wrapf(config.ErrInvalidConfig, "unknown resource kind '%s'", kind)
	}
}
