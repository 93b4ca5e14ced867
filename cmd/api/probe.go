package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errOffline = errors.New("biometrics offline")

// probeCmd hace un solo fetch contra Coda, útil para revisar credenciales.
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Consulta una vez la última lectura biométrica y la imprime",
	Long: `Hace un único fetch de la tabla Biometrics e imprime el registro
normalizado como JSON. Sale con código 1 si no hay datos (ver logs).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.log.Sync() }()

		rec, ok := a.biometrics.Latest(cmd.Context())
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "offline")
			return errOffline
		}

		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
