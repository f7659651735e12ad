package clipAndMerge

import (
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

func CellName(col, row int) string {
	return simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row))
}

func SetRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) {
	simpleUtil.CheckErr(xlsx.SetSheetRow(sheet, CellName(col, row), &value))
}

func SetColStyle(xlsx *excelize.File, sheet string, col, row1, row2, style int) {
	simpleUtil.CheckErr(xlsx.SetCellStyle(sheet, CellName(col, row1), CellName(col, row2), style))
}
