package marshaller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tarantool/go-revstore/marshaller"
)

type memberConfig struct {
	Mode     string   `yaml:"mode"`
	Weight   int      `yaml:"weight"`
	Replicas []string `yaml:"replicas,omitempty"`
}

func TestTypedYamlMarshaller_Marshal(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[memberConfig]()

	result, err := marsh.Marshal(memberConfig{Mode: "rw", Weight: 3, Replicas: []string{"r1", "r2"}})
	require.NoError(t, err)

	require.YAMLEq(t, `
mode: rw
weight: 3
replicas:
  - r1
  - r2
`, string(result))
}

func TestTypedYamlMarshaller_Unmarshal(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[memberConfig]()

	result, err := marsh.Unmarshal([]byte("mode: ro\nweight: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, memberConfig{Mode: "ro", Weight: 1, Replicas: nil}, result)
}

func TestTypedYamlMarshaller_Unmarshal_EmptyPayload(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[memberConfig]()

	result, err := marsh.Unmarshal(nil)
	require.NoError(t, err)
	assert.Equal(t, memberConfig{}, result) //nolint:exhaustruct
}

func TestTypedYamlMarshaller_Unmarshal_Invalid(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[memberConfig]()

	_, err := marsh.Unmarshal([]byte("mode: rw\nweight: heavy\n"))
	require.Error(t, err)

	var typeErr *yaml.TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Contains(t, err.Error(), "cannot unmarshal")
}

func TestTypedYamlMarshaller_Scalars(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[int]()

	payload, err := marsh.Marshal(100)
	require.NoError(t, err)
	assert.Equal(t, "100\n", string(payload))

	value, err := marsh.Unmarshal(payload)
	require.NoError(t, err)
	assert.Equal(t, 100, value)
}
