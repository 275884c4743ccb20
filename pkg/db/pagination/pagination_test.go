package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Pagination
		want Pagination
	}{
		{name: "zero value", in: Pagination{}, want: Pagination{Page: 1, PageSize: 10}},
		{name: "negative page", in: Pagination{Page: -3, PageSize: 5}, want: Pagination{Page: 1, PageSize: 5}},
		{name: "too large", in: Pagination{Page: 2, PageSize: 1000}, want: Pagination{Page: 2, PageSize: 50}},
		{name: "kept", in: Pagination{Page: 7, PageSize: 25}, want: Pagination{Page: 7, PageSize: 25}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize(10, 50))
		})
	}
}

func TestNormalizeFallbacks(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, PageSize: DefaultPageSize}, Pagination{}.Normalize(0, 0))
	assert.Equal(t, Pagination{Page: 1, PageSize: 5}, Pagination{}.Normalize(30, 5))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, Pagination{Page: 3, PageSize: 10}.Offset())
	assert.Equal(t, 0, Pagination{Page: 0, PageSize: 10}.Offset())
	assert.Equal(t, 10, Pagination{Page: 3, PageSize: 10}.Limit())
}

func TestOffsetSaturates(t *testing.T) {
	huge := Pagination{Page: math.MaxInt/20 + 2, PageSize: 20}
	assert.Equal(t, math.MaxInt, huge.Offset())
	assert.Equal(t, math.MaxInt, Pagination{Page: math.MaxInt, PageSize: 100}.Offset())

	edge := Pagination{Page: math.MaxInt/20 + 1, PageSize: 20}
	assert.Equal(t, (math.MaxInt/20)*20, edge.Offset())
	assert.Positive(t, edge.Offset())
}
