package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   uint
	Name string
}

type entity struct {
	Name string
}

func TestMapSlice(t *testing.T) {
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
}

func TestMapSliceOrEmpty(t *testing.T) {
	out := MapSliceOrEmpty[int, string](nil, strconv.Itoa)
	require.NotNil(t, out)
	assert.Empty(t, out)
	assert.Equal(t, []string{"7"}, MapSliceOrEmpty([]int{7}, strconv.Itoa))
}

func TestReconstructAll(t *testing.T) {
	toEntity := func(r *row) (*entity, error) {
		if r.Name == "" {
			return nil, errors.New("blank name")
		}
		return &entity{Name: r.Name}, nil
	}
	idOf := func(r *row) uint { return r.ID }

	t.Run("skips nil rows", func(t *testing.T) {
		out, err := ReconstructAll([]*row{{ID: 1, Name: "Kottayam"}, nil, {ID: 2, Name: "Idukki"}}, toEntity, idOf)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "Idukki", out[1].Name)
	})

	t.Run("names the failing row", func(t *testing.T) {
		_, err := ReconstructAll([]*row{{ID: 1, Name: "Kottayam"}, {ID: 9}}, toEntity, idOf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 9")
	})

	t.Run("nil input gives empty result", func(t *testing.T) {
		out, err := ReconstructAll[row, entity, uint](nil, toEntity, idOf)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
