package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DylanJ17/batchcode/internal/model"
)

func TestSegmentations(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		shape []model.Group
		want  [][]string
	}{
		{
			name:  "fixed widths yield one segmentation",
			code:  "500903",
			shape: []model.Group{model.FixedDigits(1), model.FixedDigits(3), model.FixedDigits(2)},
			want:  [][]string{{"5", "009", "03"}},
		},
		{
			name:  "variable widths enumerate slicings",
			code:  "27124128",
			shape: []model.Group{model.Digits(1, 2), model.Digits(1, 2), model.FixedDigits(2), model.Digits(1, 3)},
			want: [][]string{
				{"2", "71", "24", "128"},
				{"27", "1", "24", "128"},
				{"27", "12", "41", "28"},
			},
		},
		{
			name:  "character class mismatch",
			code:  "50A903",
			shape: []model.Group{model.FixedDigits(1), model.FixedDigits(3), model.FixedDigits(2)},
			want:  nil,
		},
		{
			name:  "length mismatch",
			code:  "5009",
			shape: []model.Group{model.FixedDigits(1), model.FixedDigits(3), model.FixedDigits(2)},
			want:  nil,
		},
		{
			name:  "optional trailing group may be empty",
			code:  "24100",
			shape: []model.Group{model.FixedDigits(2), model.FixedDigits(3), model.AlphaNum(0, 0)},
			want:  [][]string{{"24", "100", ""}},
		},
		{
			name:  "unbounded letter suffix",
			code:  "17924AW",
			shape: []model.Group{model.Digits(3, 5), model.FixedDigits(2), model.Letters(1, 0)},
			want:  [][]string{{"179", "24", "AW"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmentations(tt.code, tt.shape)
			assert.Equal(t, tt.want, got)
		})
	}
}
