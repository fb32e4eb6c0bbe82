package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/unicoord/internal/model"
)

// Coefficients renders one row per solved point with its residual error.
func Coefficients(coords []model.UniversalCoord) string {
	headers := []string{"Point", "W.x", "H.x", "W.y", "H.y", "±X", "±Y"}
	rows := make([][]string, 0, len(coords))
	for i, c := range coords {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.3f", c.W.X),
			fmt.Sprintf("%.3f", c.H.X),
			fmt.Sprintf("%.3f", c.W.Y),
			fmt.Sprintf("%.3f", c.H.Y),
			fmt.Sprintf("%.2f", c.Error.X),
			fmt.Sprintf("%.2f", c.Error.Y),
		})
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 6: true}
	return strings.Join(formatTable(headers, rows, rightAlign), "\n") + "\n"
}

// Recordings renders each decoded recording followed by its points.
func Recordings(recs []model.Recording) string {
	headers := []string{"#", "Name", "Size", "Points"}
	rows := make([][]string, 0, len(recs))
	for i, r := range recs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Name,
			formatVec(r.Size),
			strconv.Itoa(len(r.Points)),
		})
		for j, p := range r.Points {
			rows = append(rows, []string{"", fmt.Sprintf("  p%d", j+1), formatVec(p)})
		}
	}
	return strings.Join(formatTable(headers, rows, map[int]bool{0: true, 3: true}), "\n") + "\n"
}

func formatVec(v model.Vec2) string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
