package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestObjectsLs(t *testing.T) {
	out, err := execute(t, "objects", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "GaussianKernel")
	assert.Contains(t, out, "LinearMachine")
}

func TestObjectsSuggest(t *testing.T) {
	out, err := execute(t, "objects", "suggest", "GaussianKernl")
	require.NoError(t, err)
	assert.Contains(t, out, "GaussianKernel")
}

func TestObjectsDescribe(t *testing.T) {
	out, err := execute(t, "objects", "describe", "GaussianKernel", "--type", "float64")
	require.NoError(t, err)
	assert.Contains(t, out, "name: GaussianKernel")
	assert.Contains(t, out, "type: float64")
}

func TestObjectsDescribeUnknown(t *testing.T) {
	_, err := execute(t, "objects", "describe", "GaussianKernl", "--type", "float64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean GaussianKernel?")
}
