package kind_test

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/kinggod/d3-components/kind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Example() {
	type Labels map[string]string
	type Empty struct{}

	fmt.Println(kind.Classify(nil))
	fmt.Println(kind.Classify(kind.Undefined))
	fmt.Println(kind.Classify(uint8(3)))
	fmt.Println(kind.Classify("3"))
	fmt.Println(kind.Classify(time.Time{}))
	fmt.Println(kind.Classify([]int{1, 2}))
	fmt.Println(kind.Classify(Labels{"a": "b"}))
	fmt.Println(kind.Classify(func(a, b any) int { return 0 }))
	fmt.Println(kind.Classify(regexp.MustCompile(`^\w+$`)))
	fmt.Println(kind.Classify(errors.New("boom")))
	fmt.Println(kind.Classify(Empty{}))
	// Output:
	// KindNull
	// KindUndefined
	// KindNumber
	// KindString
	// KindDate
	// KindArray
	// KindObject
	// KindFunction
	// KindRegExp
	// KindError
	// Kind(0)
}

func TestClassifyMaps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, kind.KindObject, kind.Classify(map[string]any{}))
	assert.Equal(t, kind.KindObject, kind.Classify(&kind.OrderedMap{}))
	assert.Equal(t, kind.Kind(0), kind.Classify(map[int]any{}))
	assert.Equal(t, kind.KindNull, kind.Classify((*time.Time)(nil)))
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for k := kind.Kind(1); int(k) < kind.KindTotal; k++ {
		parsed, err := kind.ParseKind(k.Name())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	parsed, err := kind.ParseKind(" Number ")
	require.NoError(t, err)
	assert.Equal(t, kind.KindNumber, parsed)

	_, err = kind.ParseKind("integer")
	assert.Error(t, err)
	assert.Empty(t, kind.Kind(0).Name())
}

func TestKindYAML(t *testing.T) {
	t.Parallel()

	var doc struct {
		Type kind.Kind `yaml:"type"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("type: date"), &doc))
	assert.Equal(t, kind.KindDate, doc.Type)

	assert.Error(t, yaml.Unmarshal([]byte("type: nope"), &doc))

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "type: date\n", string(out))
}

func TestKeys(t *testing.T) {
	t.Parallel()

	om := kind.NewOrderedMap()
	om.Set("b", 1)
	om.Set("a", 2)
	om.Set("b", 3)
	om.Values["c"] = 4

	assert.Equal(t, []string{"b", "a", "c"}, kind.Keys(om))
	assert.Equal(t, []string{"a", "b"}, kind.Keys(map[string]any{"b": 1, "a": 2}))
	assert.Nil(t, kind.Keys("not an object"))
}

func TestAsSlice(t *testing.T) {
	t.Parallel()

	s, ok := kind.AsSlice([]int{1, 2})
	require.True(t, ok)
	assert.Equal(t, []any{1, 2}, s)

	_, ok = kind.AsSlice("abc")
	assert.False(t, ok)
}
