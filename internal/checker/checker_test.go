package checker

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/opcritic/internal/linalg"
	"github.com/dshills/opcritic/internal/op"
	"github.com/dshills/opcritic/internal/report"
)

// fakeOp is a minimal operator whose matrix behavior is injectable.
type fakeOp struct {
	name   string
	params []float64
	wires  []int
	matrix func() (linalg.Matrix, error)
}

func (f *fakeOp) Name() string      { return f.name }
func (f *fakeOp) NumWires() int     { return len(f.wires) }
func (f *fakeOp) Wires() []int      { return f.wires }
func (f *fakeOp) Params() []float64 { return f.params }
func (f *fakeOp) Matrix() (linalg.Matrix, error) {
	if f.matrix == nil {
		return nil, op.ErrMatrixUndefined
	}
	return f.matrix()
}

// decompOp adds an injectable decomposition.
type decompOp struct {
	fakeOp
	dec []op.Operator
}

func (d *decompOp) Decomposition() ([]op.Operator, error) { return d.dec, nil }

// eigOp adds declared eigenvalues without a matrix.
type eigOp struct {
	fakeOp
	eig []complex128
}

func (e *eigOp) Eigvals() ([]complex128, error) { return e.eig, nil }

// rotOp adds injectable single-qubit rotation angles.
type rotOp struct {
	fakeOp
	angles [3]float64
}

func (r *rotOp) SingleQubitRotAngles() ([3]float64, error) { return r.angles, nil }

// diagOp adds an injectable diagonalizing gate sequence.
type diagOp struct {
	fakeOp
	gates []op.Operator
}

func (d *diagOp) DiagonalizingGates() ([]op.Operator, error) { return d.gates, nil }

// spectralDiagOp declares eigenvalues alongside diagonalizing gates.
type spectralDiagOp struct {
	diagOp
	eig []complex128
}

func (s *spectralDiagOp) Eigvals() ([]complex128, error) { return s.eig, nil }

func newTestChecker() (*Checker, *bytes.Buffer) {
	var buf bytes.Buffer
	c := New()
	c.Color = false
	c.Out = &buf
	return c, &buf
}

func seed(v int64) *int64 { return &v }

func TestCheckRXPasses(t *testing.T) {
	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(op.RXDef)}, Options{Seed: seed(17)})
	require.NoError(t, err)

	assert.Equal(t, report.SevPass, rep.Results["RX"])
	assert.Contains(t, buf.String(), "No problems have been found with the operation RX.")
	assert.NotContains(t, rep.Output["RX"], "do not coincide")
}

func TestRegistryGrades(t *testing.T) {
	targets := make([]Target, 0)
	for _, def := range op.Builtin() {
		targets = append(targets, ForDef(def))
	}
	c, _ := newTestChecker()
	c.Verbosity = report.SevError
	rep, err := c.Check(targets, Options{Seed: seed(3)})
	require.NoError(t, err)

	for name, sev := range rep.Results {
		switch name {
		case "MultiRZ":
			// The static matrix needs the instance wire count; the
			// instance access path works, so the grade is comment.
			assert.Equal(t, report.SevComment, sev, "MultiRZ")
		default:
			assert.Equal(t, report.SevPass, sev, name)
		}
	}
}

func TestUnsetWireCountAborts(t *testing.T) {
	def := op.Definition{
		Name:      "Nameless",
		NumWires:  op.WiresUnset,
		NumParams: 0,
		New: func(params []float64, wires []int) (op.Operator, error) {
			return &fakeOp{name: "Nameless", params: params, wires: wires}, nil
		},
	}

	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(def)}, Options{})
	require.NoError(t, err)

	assert.Equal(t, report.SevError, rep.Results["Nameless"])
	out := buf.String()
	assert.Contains(t, out, "does not define the number of wires")
	// The pipeline aborted before any representation checks ran.
	assert.NotContains(t, out, "matrix")
	assert.NotContains(t, out, "eigenvalues")
	assert.NotContains(t, out, "Instantiating")
}

func TestParamCountMismatch(t *testing.T) {
	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(op.RXDef)}, Options{
		Params: [][]float64{{0.1, 0.2}},
	})
	require.NoError(t, err)

	assert.Equal(t, report.SevError, rep.Results["RX"])
	assert.Contains(t, buf.String(), "The number of provided parameters (2) does not match the expected number (1)")
	assert.NotContains(t, buf.String(), "do not coincide")
}

func TestWireCountMismatch(t *testing.T) {
	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(op.CNOTDef)}, Options{
		Wires: [][]int{{0, 1, 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, report.SevError, rep.Results["CNOT"])
	assert.Contains(t, buf.String(), "The number of provided wires (3) does not match the expected number (2)")
}

func TestMatricesDoNotCoincide(t *testing.T) {
	x := linalg.FromRows(
		[]complex128{0, 1},
		[]complex128{1, 0},
	)
	def := op.Definition{
		Name:      "Confused",
		NumWires:  1,
		NumParams: 0,
		New: func(params []float64, wires []int) (op.Operator, error) {
			z, err := op.NewPauliZ(nil, wires)
			if err != nil {
				return nil, err
			}
			return &decompOp{
				fakeOp: fakeOp{
					name: "Confused", params: params, wires: wires,
					matrix: func() (linalg.Matrix, error) { return x, nil },
				},
				dec: []op.Operator{z},
			}, nil
		},
	}

	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(def)}, Options{})
	require.NoError(t, err)

	assert.Equal(t, report.SevError, rep.Results["Confused"])
	out := buf.String()
	assert.Contains(t, out, "do not coincide")
	assert.Contains(t, out, "Confused")
}

func TestRotAnglesAreComparisonBaseline(t *testing.T) {
	x := linalg.FromRows(
		[]complex128{0, 1},
		[]complex128{1, 0},
	)
	def := op.Definition{
		Name:      "Askew",
		NumWires:  1,
		NumParams: 0,
		New: func(params []float64, wires []int) (op.Operator, error) {
			return &rotOp{
				fakeOp: fakeOp{
					name: "Askew", params: params, wires: wires,
					matrix: func() (linalg.Matrix, error) { return x, nil },
				},
				angles: [3]float64{0, 0, 0},
			}, nil
		},
	}

	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(def)}, Options{})
	require.NoError(t, err)

	assert.Equal(t, report.SevError, rep.Results["Askew"])
	// The rotation angles come before the matrix method, so the
	// mismatch names them as the baseline.
	assert.Contains(t, buf.String(),
		"obtained via the single-qubit rotation angles and via the matrix method")
}

func TestDiagGatesComparedToDeclaredEigvals(t *testing.T) {
	z := linalg.FromRows(
		[]complex128{1, 0},
		[]complex128{0, -1},
	)
	def := op.Definition{
		Name:      "WrongSpectrum",
		NumWires:  1,
		NumParams: 0,
		New: func(params []float64, wires []int) (op.Operator, error) {
			return &spectralDiagOp{
				diagOp: diagOp{
					fakeOp: fakeOp{
						name: "WrongSpectrum", params: params, wires: wires,
						matrix: func() (linalg.Matrix, error) { return z, nil },
					},
				},
				eig: []complex128{1, 1},
			}, nil
		},
	}

	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(def)}, Options{})
	require.NoError(t, err)

	assert.Equal(t, report.SevError, rep.Results["WrongSpectrum"])
	out := buf.String()
	assert.Contains(t, out, "do not match the eigenvalues of its matrix")
	assert.Contains(t, out, "does not match its declared eigenvalues")
}

func TestDiagGatesWithoutDeclaredEigvals(t *testing.T) {
	z := linalg.FromRows(
		[]complex128{1, 0},
		[]complex128{0, -1},
	)
	def := op.Definition{
		Name:      "Undeclared",
		NumWires:  1,
		NumParams: 0,
		New: func(params []float64, wires []int) (op.Operator, error) {
			return &diagOp{
				fakeOp: fakeOp{
					name: "Undeclared", params: params, wires: wires,
					matrix: func() (linalg.Matrix, error) { return z, nil },
				},
			}, nil
		},
	}

	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(def)}, Options{})
	require.NoError(t, err)

	// Diagonality is still checked; the eigenvalue comparison is
	// skipped when no eigenvalues are declared.
	assert.Equal(t, report.SevPass, rep.Results["Undeclared"])
	assert.NotContains(t, buf.String(), "declared eigenvalues")
}

func TestEigvalsWithoutMatrixSkipped(t *testing.T) {
	def := op.Definition{
		Name:      "SpectralOnly",
		NumWires:  1,
		NumParams: 0,
		New: func(params []float64, wires []int) (op.Operator, error) {
			return &eigOp{
				fakeOp: fakeOp{name: "SpectralOnly", params: params, wires: wires},
				eig:    []complex128{1, -1},
			}, nil
		},
	}

	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(def)}, Options{})
	require.NoError(t, err)

	assert.Equal(t, report.SevPass, rep.Results["SpectralOnly"])
	assert.NotContains(t, buf.String(), "eigenvalues")
}

func TestMultiRZCommentDowngrade(t *testing.T) {
	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(op.MultiRZDef)}, Options{
		Params: [][]float64{{0.7}},
		Wires:  [][]int{{0, 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, report.SevComment, rep.Results["MultiRZ"])
	assert.Contains(t, buf.String(), "works through instance configuration")
	assert.NotContains(t, buf.String(), "do not coincide")
}

func TestUnknownParamCountHint(t *testing.T) {
	def := op.Definition{
		Name:      "Greedy",
		NumWires:  1,
		NumParams: op.ParamsUnknown,
		New: func(params []float64, wires []int) (op.Operator, error) {
			if len(params) != 1 {
				return nil, op.ErrInvalidArgs
			}
			return &fakeOp{name: "Greedy", params: params, wires: wires}, nil
		},
	}

	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(def)}, Options{Seed: seed(5)})
	require.NoError(t, err)

	assert.Equal(t, report.SevHint, rep.Results["Greedy"])
	assert.Contains(t, buf.String(), "Consider declaring the number of parameters")
}

func TestInstantiationNeverSucceeds(t *testing.T) {
	def := op.Definition{
		Name:      "Unbuildable",
		NumWires:  1,
		NumParams: op.ParamsUnknown,
		New: func(params []float64, wires []int) (op.Operator, error) {
			return nil, op.ErrInvalidArgs
		},
	}

	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(def)}, Options{Seed: seed(5)})
	require.NoError(t, err)

	assert.Equal(t, report.SevError, rep.Results["Unbuildable"])
	assert.Contains(t, buf.String(), "Instantiating Unbuildable did not succeed")
}

func TestBroadcastMismatch(t *testing.T) {
	c, _ := newTestChecker()
	_, err := c.Check(
		[]Target{ForDef(op.RXDef), ForDef(op.RYDef)},
		Options{Params: [][]float64{{0.1}, {0.2}, {0.3}}},
	)
	require.ErrorIs(t, err, ErrUsage)
}

func TestBroadcastSingleSet(t *testing.T) {
	c, _ := newTestChecker()
	rep, err := c.Check(
		[]Target{ForDef(op.RXDef), ForDef(op.RYDef)},
		Options{Params: [][]float64{{0.4}}},
	)
	require.NoError(t, err)
	assert.Equal(t, report.SevPass, rep.Results["RX"])
	assert.Equal(t, report.SevPass, rep.Results["RY"])
}

func TestForOp(t *testing.T) {
	inst, err := op.NewRX([]float64{0.9}, []int{3})
	require.NoError(t, err)
	tgt, err := ForOp(inst)
	require.NoError(t, err)

	c, _ := newTestChecker()
	rep, err := c.Check([]Target{tgt}, Options{})
	require.NoError(t, err)
	assert.Equal(t, report.SevPass, rep.Results["RX"])
}

func TestForOpRequiresDefinition(t *testing.T) {
	_, err := ForOp(&fakeOp{name: "Anon", wires: []int{0}})
	require.ErrorIs(t, err, ErrUsage)
}

func TestSeededRunsAreReproducible(t *testing.T) {
	run := func() string {
		c, buf := newTestChecker()
		_, err := c.Check([]Target{ForDef(op.RotDef)}, Options{Seed: seed(99)})
		require.NoError(t, err)
		return buf.String()
	}
	assert.Equal(t, run(), run())
}

func TestVerbosityFiltersNonErrors(t *testing.T) {
	c, buf := newTestChecker()
	c.Verbosity = report.SevError
	rep, err := c.Check([]Target{ForDef(op.MultiRZDef)}, Options{
		Params: [][]float64{{0.7}},
		Wires:  [][]int{{0, 1}},
	})
	require.NoError(t, err)

	// The grade still worsens, but comment lines are not printed.
	assert.Equal(t, report.SevComment, rep.Results["MultiRZ"])
	assert.NotContains(t, buf.String(), "works through instance configuration")
}

func TestReportMirrorsTerminalOutput(t *testing.T) {
	c, buf := newTestChecker()
	rep, err := c.Check([]Target{ForDef(op.HadamardDef)}, Options{})
	require.NoError(t, err)
	assert.Equal(t, strings.TrimRight(buf.String(), "\n"), strings.TrimRight(rep.Output["Hadamard"], "\n"))
}
