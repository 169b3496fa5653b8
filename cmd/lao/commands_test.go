// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lao/astro"
	"github.com/katalvlaran/lao/linalg"
	"github.com/katalvlaran/lao/sparse"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "8 7\n")
	assert.Contains(t, out, "3 3\n")
	assert.Contains(t, out, "9 17\n14 23\n")
	assert.Contains(t, out, "1 1\n")
	assert.Contains(t, out, "J(1,2) = 2")
	assert.Contains(t, out, "31 32 33 34 35 36\n")
	assert.Contains(t, out, "25 30\n")
	assert.Contains(t, out, "A unchanged: true")
	assert.Contains(t, out, "1 0 0\n2 1 0\n3 2 1\n")
	assert.Contains(t, out, "1 1 2\n0 -1 -1\n0 0 -3\n")
	assert.Contains(t, out, "singular: false")
}

func TestLU(t *testing.T) {
	a := writeFile(t, "a.csv", "1,1,2\n2,1,3\n3,1,1\n")
	b := writeFile(t, "b.csv", "5\n9\n4\n")

	out, err := execute(t, "lu", "--file", a, "--rhs", b)
	require.NoError(t, err)
	assert.Contains(t, out, "1 0 0\n2 1 0\n3 2 1\n")
	assert.Contains(t, out, "1 1 2\n0 -1 -1\n0 0 -3\n")
	assert.Contains(t, out, "1\n-2\n3\n")
	assert.Contains(t, out, "singular: false")
}

func TestLU_SingularReported(t *testing.T) {
	a := writeFile(t, "a.csv", "0,1\n1,0\n")

	out, err := execute(t, "lu", "-f", a)
	require.NoError(t, err)
	assert.Contains(t, out, "zero pivot at 1")
}

func TestLU_Errors(t *testing.T) {
	_, err := execute(t, "lu")
	require.Error(t, err)

	_, err = execute(t, "lu", "--file", writeFile(t, "a.csv", "1,2,3\n4,5,6\n"))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)

	_, err = execute(t, "lu", "--file", writeFile(t, "a.csv", "1,x\n3,4\n"))
	require.ErrorIs(t, err, sparse.ErrParse)

	var big bytes.Buffer
	for i := 0; i < 10; i++ {
		big.WriteString("1,1,1,1,1,1,1,1,1,1\n")
	}
	_, err = execute(t, "lu", "--file", writeFile(t, "big.csv", big.String()))
	require.ErrorIs(t, err, errSize)

	_, err = execute(t, "lu", "--file", filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	a := writeFile(t, "a.csv", "1,0\n0,1\n")
	_, err = execute(t, "lu", "--file", a, "--rhs", writeFile(t, "b.csv", "1,2,3\n"))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestJacobi(t *testing.T) {
	a := writeFile(t, "a.csv", "2,1\n5,7\n")
	// b given as a single row is accepted as well as a column.
	b := writeFile(t, "b.csv", "11,13\n")

	out, err := execute(t, "jacobi", "--a", a, "--b", b, "--max-iter", "500", "--tol", "1e-12")
	require.NoError(t, err)
	assert.Contains(t, out, "converged=true")
	assert.Contains(t, out, "7.111111")
	assert.Contains(t, out, "-3.222222")

	out, err = execute(t, "jacobi", "--a", a, "--b", b, "--max-iter", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "converged=false iterations=3")
}

func TestJacobi_Errors(t *testing.T) {
	a := writeFile(t, "a.csv", "2,1\n5,7\n")

	_, err := execute(t, "jacobi", "--a", a)
	require.Error(t, err)

	_, err = execute(t, "jacobi", "--a", a, "--b", writeFile(t, "b.csv", "1\n2\n3\n"))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)

	_, err = execute(t, "jacobi", "--a", a, "--b", writeFile(t, "b.csv", "1,2\n3,4\n"))
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)

	_, err = execute(t, "jacobi", "--a", a, "--b", writeFile(t, "b.csv", "1\n2\n"), "--max-iter", "-1")
	require.ErrorIs(t, err, linalg.ErrInvalidArgument)
}

func TestEph_JSON(t *testing.T) {
	out, err := execute(t, "eph")
	require.NoError(t, err)

	var st astro.State
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, "EM bary", st.Body)
	assert.InDelta(t, 0, st.MJD2000, 1e-12)
	assert.InDelta(t, 2451544.5, st.JD, 1e-9)

	// J2000.0 is noon, half a day after the default date.
	out, err = execute(t, "eph", "--mjd2000", "0.5")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.InDelta(t, 2451545.0, st.JD, 1e-9)
	assert.InDelta(t, -0.17713*astro.AU, st.Position[0], 1e-3*astro.AU)
	assert.InDelta(t, 0.96724*astro.AU, st.Position[1], 1e-3*astro.AU)
}

func TestEph_YAMLAndMJD2000(t *testing.T) {
	out, err := execute(t, "eph", "--body", "Mars", "--mjd2000", "8780", "--format", "yml")
	require.NoError(t, err)

	var st astro.State
	require.NoError(t, yaml.Unmarshal([]byte(out), &st))
	assert.Equal(t, "Mars", st.Body)
	assert.InDelta(t, 8780, st.MJD2000, 1e-12)
}

func TestEph_DescribeAndList(t *testing.T) {
	out, err := execute(t, "eph", "--body", "Jupiter", "--describe")
	require.NoError(t, err)
	assert.Contains(t, out, `"body": "Jupiter"`)
	assert.Contains(t, out, "JPL_low_precision")

	out, err = execute(t, "eph", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "EM bary\n")
	assert.Contains(t, out, "Neptune\n")
}

func TestEph_Errors(t *testing.T) {
	_, err := execute(t, "eph", "--body", "Pluto")
	require.ErrorIs(t, err, astro.ErrUnknownBody)

	_, err = execute(t, "eph", "--date", "15/01/2024")
	require.ErrorIs(t, err, astro.ErrInvalidArgument)

	_, err = execute(t, "eph", "--format", "xml")
	require.ErrorIs(t, err, astro.ErrInvalidArgument)

	_, err = execute(t, "eph", "--date", "2150-01-01")
	require.ErrorIs(t, err, astro.ErrEpochRange)
}
