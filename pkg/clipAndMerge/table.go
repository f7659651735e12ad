package clipAndMerge

import (
	"strconv"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

const GeneralStatsSheet = "General Stats"

// Column describes one general-stats table column. Modify is applied at
// render time only; the stored record is never changed.
type Column struct {
	Key         string
	Title       string
	Description string
	Min         float64
	Max         float64
	Suffix      string
	Scale       string
	Decimals    int
	Modify      func(float64) float64
}

// DuplicationRateColumn shows the stored fraction as a percentage.
var DuplicationRateColumn = Column{
	Key:         DuplicationRate,
	Title:       "Duplication Rate",
	Description: "Percentage of reads categorised as a technical duplicate",
	Min:         0,
	Max:         100,
	Suffix:      "%",
	Scale:       "OrRd",
	Decimals:    0,
	Modify:      func(x float64) float64 { return x * 100.0 },
}

func GeneralStatsColumns() []Column {
	return []Column{DuplicationRateColumn}
}

// Value is the presentation value of v.
func (c Column) Value(v float64) float64 {
	if c.Modify == nil {
		return v
	}
	return c.Modify(v)
}

// Display formats v the way the table shows it, e.g. 0.23 -> "23%".
func (c Column) Display(v float64) string {
	return strconv.FormatFloat(c.Value(v), 'f', c.Decimals, 64) + c.Suffix
}

// NumFmt is the spreadsheet number format matching Display.
func (c Column) NumFmt() string {
	var numFmt = "0"
	if c.Decimals > 0 {
		numFmt += "." + strings.Repeat("0", c.Decimals)
	}
	if c.Suffix != "" {
		numFmt += `"` + c.Suffix + `"`
	}
	return numFmt
}

// color scale endpoints, low to high
var scaleColors = map[string][2]string{
	"OrRd":   {"#FFF7EC", "#B30000"},
	"Blues":  {"#F7FBFF", "#08519C"},
	"Greens": {"#F7FCF5", "#006D2C"},
	"RdYlGn": {"#D73027", "#1A9850"},
}

func ScaleColors(scale string) (low, high string) {
	var c, ok = scaleColors[scale]
	if !ok {
		c = scaleColors["Blues"]
	}
	return c[0], c[1]
}

// GeneralStatsXlsx renders one row per sample and one column per Column.
// Samples lacking a column's key get an empty cell.
func GeneralStatsXlsx(data ResultSet, columns []Column) *excelize.File {
	var (
		xlsx    = excelize.NewFile()
		sheet   = GeneralStatsSheet
		samples = data.Samples()
		lastRow = len(samples) + 1
	)
	simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", sheet))
	simpleUtil.CheckErr(xlsx.SetColWidth(sheet, "A", "A", 25))

	var title = []interface{}{"Sample"}
	for _, c := range columns {
		title = append(title, c.Title)
	}
	SetRow(xlsx, sheet, 1, 1, title)

	for i, name := range samples {
		var row = []interface{}{name}
		for _, c := range columns {
			v, ok := data[name][c.Key]
			if !ok {
				row = append(row, nil)
				continue
			}
			row = append(row, c.Value(v))
		}
		SetRow(xlsx, sheet, 1, i+2, row)
	}

	for j, c := range columns {
		var col = j + 2
		var numFmt = c.NumFmt()
		var style = simpleUtil.HandleError(xlsx.NewStyle(&excelize.Style{CustomNumFmt: &numFmt}))
		simpleUtil.CheckErr(xlsx.SetColWidth(sheet, colName(col), colName(col), 18))
		if lastRow < 2 {
			continue
		}
		SetColStyle(xlsx, sheet, col, 2, lastRow, style)

		var low, high = ScaleColors(c.Scale)
		simpleUtil.CheckErr(
			xlsx.SetConditionalFormat(
				sheet,
				CellName(col, 2)+":"+CellName(col, lastRow),
				[]excelize.ConditionalFormatOptions{
					{
						Type:     "2_color_scale",
						Criteria: "=",
						MinType:  "num",
						MaxType:  "num",
						MinValue: strconv.FormatFloat(c.Min, 'f', -1, 64),
						MaxValue: strconv.FormatFloat(c.Max, 'f', -1, 64),
						MinColor: low,
						MaxColor: high,
					},
				},
			),
		)
	}
	return xlsx
}

func colName(col int) string {
	return simpleUtil.HandleError(excelize.ColumnNumberToName(col))
}
