package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// ReadCSV maps every row of a csv table onto a struct of type T using the
// "csv" field tags. The header row is read eagerly, rows are read lazily.
// Iteration stops after the first error, which carries the line number.
func ReadCSV[T any](reader io.Reader, delimiter rune) (func(yield func(T, error) bool), error) {
	csv_reader := csv.NewReader(reader)
	csv_reader.Comma = delimiter
	csv_reader.TrimLeadingSpace = true
	header, err := csv_reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	name_row_mapping := NewDict[string, int](10)
	for i, name := range header {
		name_row_mapping[strings.TrimSpace(name)] = i
	}

	var val T
	typ := reflect.TypeOf(val)
	num_field := typ.NumField()
	fields := NewList[Triple[int, int, reflect.Kind]](num_field)
	for i := 0; i < num_field; i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("csv")
		if tag == "" {
			continue
		}
		if !name_row_mapping.ContainsKey(tag) {
			continue
		}
		row := name_row_mapping[tag]
		switch field.Type.Kind() {
		case reflect.Bool:
			fields.Add(MakeTriple(i, row, reflect.Bool))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fields.Add(MakeTriple(i, row, reflect.Int))
		case reflect.Float32, reflect.Float64:
			fields.Add(MakeTriple(i, row, reflect.Float64))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fields.Add(MakeTriple(i, row, reflect.Uint))
		case reflect.String:
			fields.Add(MakeTriple(i, row, reflect.String))
		}
	}

	return func(yield func(T, error) bool) {
		var zero T
		for {
			record, err := csv_reader.Read()
			if err == io.EOF {
				return
			} else if err != nil {
				yield(zero, fmt.Errorf("failed to read csv row: %w", err))
				return
			}
			line, _ := csv_reader.FieldPos(0)
			t := reflect.New(typ).Elem()
			for _, field := range fields {
				index := field.A
				row := field.B
				typ := field.C
				value := strings.TrimSpace(record[row])
				if value == "" {
					continue
				}
				if err := _SetField(t.Field(index), typ, value); err != nil {
					yield(zero, fmt.Errorf("line %d, column %v: %w", line, header[row], err))
					return
				}
			}
			if !yield(t.Interface().(T), nil) {
				return
			}
		}
	}, nil
}

func _SetField(f reflect.Value, typ reflect.Kind, value string) error {
	switch typ {
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		f.SetBool(b)
	case reflect.Int:
		num, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		if f.OverflowInt(num) {
			return fmt.Errorf("value %v out of range for %v", value, f.Kind())
		}
		f.SetInt(num)
	case reflect.Uint:
		num, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		if f.OverflowUint(num) {
			return fmt.Errorf("value %v out of range for %v", value, f.Kind())
		}
		f.SetUint(num)
	case reflect.Float64:
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		if f.OverflowFloat(num) {
			return fmt.Errorf("value %v out of range for %v", value, f.Kind())
		}
		f.SetFloat(num)
	case reflect.String:
		f.SetString(value)
	}
	return nil
}
