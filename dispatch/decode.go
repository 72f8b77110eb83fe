// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/katalvlaran/lvtrace/graph"
)

// Argument shapes. Tags are the input map keys.
type (
	arrayArgs struct {
		Array []int `mapstructure:"array"`
	}
	searchArgs struct {
		Array  []int `mapstructure:"array"`
		Target int   `mapstructure:"target"`
	}
	graphArgs struct {
		Nodes     []graph.Node `mapstructure:"nodes"`
		Edges     []graph.Edge `mapstructure:"edges"`
		StartNode string       `mapstructure:"startNode"`
	}
	fibonacciArgs struct {
		N int `mapstructure:"n"`
	}
	knapsackArgs struct {
		Weights  []int `mapstructure:"weights"`
		Values   []int `mapstructure:"values"`
		Capacity int   `mapstructure:"capacity"`
	}
	pairArgs struct {
		Str1 string `mapstructure:"str1"`
		Str2 string `mapstructure:"str2"`
	}
	coinArgs struct {
		Coins  []int `mapstructure:"coins"`
		Amount int   `mapstructure:"amount"`
	}
	chainArgs struct {
		Dimensions []int `mapstructure:"dimensions"`
	}
	rodArgs struct {
		Prices []int `mapstructure:"prices"`
		Length int   `mapstructure:"length"`
	}
	subsetArgs struct {
		Array  []int `mapstructure:"array"`
		Target int   `mapstructure:"target"`
	}
	palindromeArgs struct {
		Text string `mapstructure:"text"`
	}
	textArgs struct {
		Text    string `mapstructure:"text"`
		Pattern string `mapstructure:"pattern"`
	}
	multiArgs struct {
		Text     string   `mapstructure:"text"`
		Patterns []string `mapstructure:"patterns"`
	}
)

// decode checks that every required key is present, decodes input into a T
// and applies the size limits of T when it has any.
func decode[T any](input map[string]any, required []string) (T, error) {
	var out T
	var missing []string
	for _, key := range required {
		if v, ok := input[key]; !ok || v == nil {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return out, fmt.Errorf("%w: missing %v", ErrInvalidShape, missing)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(rejectFractions),
		Result:           &out,
	})
	if err != nil {
		return out, fmt.Errorf("dispatch: building decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	if b, ok := any(out).(bounded); ok {
		if err := b.bounds(); err != nil {
			return out, err
		}
	}
	return out, nil
}

// rejectFractions refuses to truncate a float into an integer field. JSON
// numbers arrive as float64, so 3.0 decodes as 3 while 3.7 is an error.
func rejectFractions(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%v is not an integer", data)
	}
	return data, nil
}
