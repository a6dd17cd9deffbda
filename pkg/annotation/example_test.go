package annotation_test

import (
	"fmt"

	"github.com/go-strata/strata/pkg/annotation"
	"github.com/go-strata/strata/pkg/chart"
	"github.com/go-strata/strata/pkg/graphics"
	"github.com/go-strata/strata/pkg/scale"
)

func Example() {
	view := chart.New(chart.Config{
		Size:   graphics.Size{Width: 400, Height: 300},
		XScale: scale.Category("month", "Jan", "Feb", "Mar"),
		YScales: map[string]*scale.Scale{
			"sales": scale.Linear("sales", 0, 1000),
		},
	})

	ctrl := view.Annotations()
	ctrl.Line(&annotation.LineOption{
		Start: annotation.Pair{X: annotation.Str("min"), Y: annotation.Num(800)},
		End:   annotation.Pair{X: annotation.Str("max"), Y: annotation.Num(800)},
		Text:  &annotation.LineText{Position: "end", Content: "target"},
	}).Region(&annotation.RegionOption{
		Start: annotation.Pair{X: annotation.Str("Feb"), Y: annotation.Str("min")},
		End:   annotation.Pair{X: annotation.Str("Mar"), Y: annotation.Str("max")},
	})

	ctrl.Render()
	for _, rec := range ctrl.Components() {
		fmt.Println(rec.Kind)
	}
	// Output:
	// line
	// region
}
