package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/opcritic/internal/op"
)

func newGatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the registered gate definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGates(cmd)
		},
	}
}

func runGates(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWIRES\tPARAMS\tSTATIC")
	for _, def := range op.Builtin() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			def.Name, wiresLabel(def.NumWires), paramsLabel(def.NumParams),
			staticLabel(def.Static))
	}
	return w.Flush()
}

func wiresLabel(n int) string {
	switch n {
	case op.WiresAny:
		return "any"
	case op.WiresUnset:
		return "unset"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func paramsLabel(n int) string {
	if n == op.ParamsUnknown {
		return "unknown"
	}
	return fmt.Sprintf("%d", n)
}

func staticLabel(st op.Static) string {
	var caps []string
	if st.Eigvals != nil {
		caps = append(caps, "eigvals")
	}
	if st.Matrix != nil {
		caps = append(caps, "matrix")
	}
	if st.SparseMatrix != nil {
		caps = append(caps, "sparse")
	}
	if st.Terms != nil {
		caps = append(caps, "terms")
	}
	if st.Decomposition != nil {
		caps = append(caps, "decomposition")
	}
	if st.DiagonalizingGates != nil {
		caps = append(caps, "diag-gates")
	}
	if len(caps) == 0 {
		return "-"
	}
	return strings.Join(caps, ",")
}
