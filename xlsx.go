package docgen

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/bingoohuang/docgen/pkg/cast"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// T just for tag for convenience to declare some tags for the whole structure.
type T interface{ t() }

// defaultSheet is the sheet excelize puts in a new file.
const defaultSheet = "Sheet1"

// Xlsx is the structure for xlsx processing.
type Xlsx struct {
	file         *excelize.File
	currentSheet string
	option       *Option
	rowsWritten  int
	boldStyles   map[float64]int
	// the default sheet is still unused, the first added sheet takes it over
	pristine bool
}

func (x *Xlsx) hasInput() bool { return x.option.File != nil }

// New creates a new instance of Xlsx.
func New(optionFns ...OptionFn) *Xlsx {
	x := &Xlsx{
		option:     createOption(optionFns),
		boldStyles: make(map[float64]int),
	}

	if x.hasInput() {
		x.file = x.option.File
	} else {
		x.file = excelize.NewFile()
		x.pristine = true
		x.setDocProps()
	}

	return x
}

func (x *Xlsx) setDocProps() {
	m := x.option.Meta
	props := &excelize.DocProperties{
		Title:          m.Title,
		Creator:        m.Author,
		LastModifiedBy: m.Author,
	}

	if !m.Created.IsZero() {
		props.Created = m.Created.UTC().Format(time.RFC3339)
		props.Modified = props.Created
	}

	if err := x.file.SetDocProps(props); err != nil {
		logrus.Warnf("failed to set document properties: %v", err)
	}
}

// File returns the underlying excelize file.
func (x *Xlsx) File() *excelize.File { return x.file }

// SheetNames returns the sheet names in workbook order.
func (x *Xlsx) SheetNames() []string { return x.file.GetSheetList() }

// Close does some cleanup like remove temporary files.
func (x *Xlsx) Close() error {
	return x.file.Close()
}

// Write Writes beans to the underlying xlsx.
// The sheet is named by the `sheet` tag on the embedded T field,
// the title row by the `title` tags on the exported fields.
// Rows go below what the sheet already holds, titles only head an empty sheet.
func (x *Xlsx) Write(beans interface{}) error {
	beanReflectValue := reflect.ValueOf(beans)
	if !beanReflectValue.IsValid() {
		return errors.New("nil beans")
	}

	beanType := beanReflectValue.Type()
	isSlice := beanReflectValue.Kind() == reflect.Slice

	if isSlice {
		beanType = beanType.Elem()
	}

	if beanType.Kind() == reflect.Ptr {
		beanType = beanType.Elem()
	}

	if beanType.Kind() != reflect.Struct {
		return fmt.Errorf("unsupported bean type %s", beanType)
	}

	ttag := findTTag(beanType)

	sheet, err := x.createSheet(ttag, false)
	if err != nil {
		return err
	}

	rows, err := x.file.GetRows(sheet)
	if err != nil {
		return err
	}

	x.currentSheet = sheet
	x.rowsWritten = len(rows)

	fields := collectExportableFields(beanType)
	titles, customizedTitle := collectTitles(fields)

	if writeTitle := customizedTitle || ttag.Get("title") != ""; writeTitle && x.rowsWritten == 0 {
		if err := x.writeTitles(titles); err != nil {
			return err
		}
	}

	if !isSlice {
		return x.writeRow(fields, beanReflectValue)
	}

	for i := 0; i < beanReflectValue.Len(); i++ {
		if err := x.writeRow(fields, beanReflectValue.Index(i)); err != nil {
			return err
		}
	}

	return nil
}

// Sheet finds the sheet with the name or adds a new one.
func (x *Xlsx) Sheet(name string) (string, error) {
	if x.findSheet(name) {
		return name, nil
	}

	return x.addSheet(name)
}

func (x *Xlsx) addSheet(name string) (string, error) {
	if name == "" {
		name = fmt.Sprintf("Sheet%d", len(x.file.GetSheetList())+1)
	}

	if x.pristine {
		x.pristine = false
		return name, x.file.SetSheetName(defaultSheet, name)
	}

	_, err := x.file.NewSheet(name)

	return name, err
}

// BoldStyle returns the id of a cell style with a bold font of the size,
// 0 for the default size.
func (x *Xlsx) BoldStyle(size float64) (int, error) {
	if id, ok := x.boldStyles[size]; ok {
		return id, nil
	}

	id, err := x.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: size}})
	if err != nil {
		return 0, err
	}

	x.boldStyles[size] = id

	return id, nil
}

// SetCell sets a cell of the sheet, styled unless styleID is 0.
func (x *Xlsx) SetCell(sheet, cell string, value interface{}, styleID int) error {
	if err := x.file.SetCellValue(sheet, cell, value); err != nil {
		return err
	}

	if styleID == 0 {
		return nil
	}

	return x.file.SetCellStyle(sheet, cell, cell, styleID)
}

// Read reads the rows below the title row of the sheet into slicePtr.
func (x *Xlsx) Read(slicePtr interface{}) error {
	v := reflect.ValueOf(slicePtr)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return errors.New("the input argument should be a pointer of slice")
	}

	beanType := v.Elem().Type().Elem()
	if beanType.Kind() != reflect.Struct {
		return fmt.Errorf("unsupported bean type %s", beanType)
	}

	ttag := findTTag(beanType)

	sheet, err := x.createSheet(ttag, true)
	if err != nil {
		return err
	}

	if sheet == "" {
		return fmt.Errorf("unable to find sheet with name %s", ttag.Get("sheet"))
	}

	x.currentSheet = sheet

	rows, err := x.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return err
	}

	fields := collectExportableFields(beanType)
	titles, _ := collectTitles(fields)
	location := locateTitleRow(fields, titles, rows)

	if location.isValid() {
		slice, err := readRows(beanType, location)
		if err != nil {
			return err
		}

		v.Elem().Set(slice)
	}

	return nil
}

func readRows(beanType reflect.Type, l titleLocation) (reflect.Value, error) {
	slice := reflect.MakeSlice(reflect.SliceOf(beanType), 0, len(l.dataRows))

	for i, row := range l.dataRows {
		rowBean, err := createRowBean(beanType, l, row, l.titledRowNumber+i+1)
		if err != nil {
			return reflect.Value{}, err
		}

		slice = reflect.Append(slice, rowBean)
	}

	return slice, nil
}

func createRowBean(beanType reflect.Type, l titleLocation, row []string, rowNumber int) (reflect.Value, error) {
	rowBean := reflect.New(beanType).Elem()

	for _, cell := range l.titleCells {
		if cell.cellColumn >= len(row) {
			continue
		}

		s := strings.TrimSpace(row[cell.cellColumn])
		if s == "" {
			continue
		}

		sf := cell.structField
		f := rowBean.FieldByIndex(sf.Index)

		if sf.Type == timeType {
			t, err := parseTime(sf, s)
			if err != nil {
				return reflect.Value{}, err
			}

			f.Set(reflect.ValueOf(t))

			continue
		}

		v, err := cast.To(s, sf.Type)
		if err != nil {
			if sf.Tag.Get("omiterr") == "true" {
				continue
			}

			name, _ := excelize.CoordinatesToCellName(cell.cellColumn+1, rowNumber)

			return reflect.Value{}, fmt.Errorf("cell %s: %w", name, err)
		}

		f.Set(v)
	}

	return rowBean, nil
}

// parseTime parses a time cell: text cells with the format tag, date serial
// numbers as excel dates, anything else with dateparse.
func parseTime(sf reflect.StructField, s string) (time.Time, error) {
	if f := sf.Tag.Get("format"); f != "" {
		return time.ParseInLocation(ParseJavaTimeFormat(f), s, time.Local)
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, err
		}

		return time.Date(t.Year(), t.Month(), t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local), nil
	}

	return dateparse.ParseLocal(s)
}

// createSheet returns the sheet a bean type maps to. Read only lookups return
// "" when there is no such sheet.
func (x *Xlsx) createSheet(ttag reflect.StructTag, readonly bool) (string, error) {
	sheetName := ttag.Get("sheet")

	if x.findSheet(sheetName) {
		return sheetName, nil
	}

	if x.hasInput() && sheetName == "" {
		if sheets := x.file.GetSheetList(); len(sheets) > 0 {
			return sheets[0], nil
		}
	}

	if readonly {
		return "", nil
	}

	return x.addSheet(sheetName)
}

func collectTitles(fields []reflect.StructField) ([]string, bool) {
	titles := make([]string, 0, len(fields))
	customizedTitle := false

	for _, f := range fields {
		t := f.Tag.Get("title")
		if t == "" {
			t = f.Name
		} else {
			customizedTitle = true
		}

		titles = append(titles, t)
	}

	return titles, customizedTitle
}

// Titles returns the title row the bean's struct type writes.
func Titles(bean interface{}) []string {
	t := reflect.TypeOf(bean)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	titles, _ := collectTitles(collectExportableFields(t))

	return titles
}

// collectExportableFields skips unexported fields and the embedded T marker.
func collectExportableFields(t reflect.Type) []reflect.StructField {
	fields := make([]reflect.StructField, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.PkgPath == "" && f.Type != tType {
			fields = append(fields, f)
		}
	}

	return fields
}

func findTTag(t reflect.Type) reflect.StructTag {
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.Type == tType {
			return f.Tag
		}
	}

	return ""
}

// SaveToFile writes the workbook out to a file, nothing is left behind on failure.
func (x *Xlsx) SaveToFile(file string) error {
	return saveFile(file, x.Save)
}

// Save writes the workbook out to a writer in the zipped xlsx format.
func (x *Xlsx) Save(w io.Writer) error {
	return x.file.Write(w)
}

func (x *Xlsx) writeRow(fields []reflect.StructField, value reflect.Value) error {
	x.rowsWritten++
	value = reflect.Indirect(value)

	for i, field := range fields {
		cell, err := excelize.CoordinatesToCellName(i+1, x.rowsWritten)
		if err != nil {
			return err
		}

		if err := x.setCellValue(cell, field, value); err != nil {
			return err
		}
	}

	return nil
}

func (x *Xlsx) setCellValue(cell string, field reflect.StructField, value reflect.Value) error {
	v := value.FieldByIndex(field.Index).Interface()
	sheet := x.currentSheet

	if fv, ok := convertNumberToFloat64(v); ok {
		return x.file.SetCellFloat(sheet, cell, fv, -1, 64)
	}

	switch fv := v.(type) {
	case time.Time:
		if format := field.Tag.Get("format"); format != "" {
			return x.file.SetCellStr(sheet, cell, fv.Format(ParseJavaTimeFormat(format)))
		}

		return x.file.SetCellValue(sheet, cell, fv)
	case string:
		return x.file.SetCellStr(sheet, cell, fv)
	case bool:
		return x.file.SetCellBool(sheet, cell, fv)
	case nil:
		return x.file.SetCellStr(sheet, cell, "")
	default:
		return x.file.SetCellStr(sheet, cell, fmt.Sprintf("%v", fv))
	}
}

func (x *Xlsx) writeTitles(titles []string) error {
	bold, err := x.BoldStyle(0)
	if err != nil {
		return err
	}

	x.rowsWritten++

	for i, title := range titles {
		cell, err := excelize.CoordinatesToCellName(i+1, x.rowsWritten)
		if err != nil {
			return err
		}

		if err := x.SetCell(x.currentSheet, cell, title, bold); err != nil {
			return err
		}
	}

	return nil
}

type titleLocation struct {
	titledRowNumber int // 1-based
	titleCells      []titleCell
	dataRows        [][]string
}

type titleCell struct {
	cellColumn  int // 0-based
	structField reflect.StructField
}

func (t *titleLocation) isValid() bool {
	return len(t.titleCells) > 0
}

// locateTitleRow finds the first row holding any of the titles. Every row
// below it is a data row.
func locateTitleRow(fields []reflect.StructField, titles []string, rows [][]string) titleLocation {
	for i, row := range rows {
		titleCells := make([]titleCell, 0, len(fields))

		for col, cellString := range row {
			cellString = strings.TrimSpace(cellString)

			for j, title := range titles {
				if cellString == title {
					titleCells = append(titleCells, titleCell{cellColumn: col, structField: fields[j]})
					break
				}
			}
		}

		if len(titleCells) > 0 {
			return titleLocation{titledRowNumber: i + 1, titleCells: titleCells, dataRows: rows[i+1:]}
		}
	}

	return titleLocation{}
}

// findSheet tells whether the sheet exists. The unused default sheet of a new
// file does not count.
func (x *Xlsx) findSheet(sheetName string) bool {
	if sheetName == "" || (x.pristine && sheetName == defaultSheet) {
		return false
	}

	idx, err := x.file.GetSheetIndex(sheetName)

	return err == nil && idx >= 0
}

// nolint gochecknoglobals
var (
	tType    = reflect.TypeOf((*T)(nil)).Elem()
	timeType = reflect.TypeOf((*time.Time)(nil)).Elem()

	javaTimeReplacer = strings.NewReplacer(
		"yyyy", "2006", "yy", "06", "MM", "01", "dd", "02",
		"HH", "15", "mm", "04", "ss", "05", "SSS", "000",
	)
)

// ParseJavaTimeFormat converts the time format in java to golang.
func ParseJavaTimeFormat(layout string) string {
	return javaTimeReplacer.Replace(layout)
}

// convertNumberToFloat64 converts a value of any integer or float kind to
// float64, false for anything else.
func convertNumberToFloat64(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
