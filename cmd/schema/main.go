// Command schema aplica o valida la política ddlAuto de los stores sin levantar la API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jhoicas/multistore-api/internal/infrastructure/datastore"
	"github.com/jhoicas/multistore-api/internal/infrastructure/persistence"
	"github.com/jhoicas/multistore-api/pkg/config"
	"github.com/jhoicas/multistore-api/pkg/jwt"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		cfg     *config.Config
		log     *logger.Logger
	)

	root := &cobra.Command{
		Use:           "schema",
		Short:         "Reconciliación de esquema por store (user, company, brand)",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil {
				// .env por defecto es opcional; uno indicado explícitamente no.
				if cmd.Flags().Changed("env-file") {
					return fmt.Errorf("cargar %s: %w", envFile, err)
				}
			}
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: cmd.ErrOrStderr()})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Archivo de variables de entorno a cargar")

	var policy string
	applyCmd := &cobra.Command{
		Use:   "apply [groups...]",
		Short: "Aplica la política ddlAuto (por defecto la configurada en cada grupo)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return applySchema(cmd.Context(), log, cfg, args, policy)
		},
	}
	applyCmd.Flags().StringVar(&policy, "policy", "", "Fuerza la política: validate|update|create")

	validateCmd := &cobra.Command{
		Use:   "validate [groups...]",
		Short: "Verifica que tablas y columnas existan, sin modificar nada",
		RunE: func(cmd *cobra.Command, args []string) error {
			return applySchema(cmd.Context(), log, cfg, args, string(datastore.DDLValidate))
		},
	}

	var subject string
	var ttl int
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un Bearer token para /api (requiere JWT_SECRET)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := jwt.Generate(cfg.JWT.Secret, subject, cfg.JWT.Issuer, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	tokenCmd.Flags().StringVar(&subject, "subject", "ops", "Subject del token")
	tokenCmd.Flags().IntVar(&ttl, "ttl", 60, "Vigencia en minutos")

	root.AddCommand(applyCmd, validateCmd, tokenCmd)
	return root
}

// applySchema registra cada grupo con la política indicada y lo cierra a continuación.
// create-drop se rechaza: el cierre inmediato borraría lo recién creado.
func applySchema(ctx context.Context, log *logger.Logger, cfg *config.Config, groups []string, policy string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(groups) == 0 {
		groups = config.Groups
	}
	schemas := persistence.Schemas()

	var errs []error
	for _, group := range groups {
		if !slices.Contains(config.Groups, group) {
			return fmt.Errorf("grupo desconocido %q (user, company, brand)", group)
		}
		ds := cfg.Datasources[group]
		if policy != "" {
			ds.DDLAuto = policy
		}
		p, err := datastore.ParseDDLAuto(ds.DDLAuto)
		if err != nil {
			return fmt.Errorf("store %s: %w", group, err)
		}
		if p == datastore.DDLCreateDrop {
			return fmt.Errorf("store %s: create-drop no aplica fuera de la API", group)
		}
		if p == datastore.DDLNone {
			log.Warn().Str("store", group).Msg("ddlAuto none: nada que aplicar")
			continue
		}

		start := time.Now()
		reg := datastore.NewRegistry(log)
		_, err = reg.Register(ctx, group, ds, schemas[group])
		if closeErr := reg.Close(ctx); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
		if err != nil {
			log.Error().Err(err).Str("store", group).Str("ddl_auto", string(p)).Msg("esquema")
			errs = append(errs, err)
			continue
		}
		log.Info().Str("store", group).Str("ddl_auto", string(p)).Dur("elapsed", time.Since(start)).Msg("esquema ok")
	}
	return errors.Join(errs...)
}
