package common

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func Filter[T any](arr []T, f func(T) bool) []T {
	filtered := make([]T, 0)

	for _, v := range arr {
		if f(v) {
			filtered = append(filtered, v)
		}
	}

	return filtered
}

// AnyToStruct converts map or struct to selected struct.
func AnyToStruct[T any](data any) (*T, error) {
	var res T

	bytesData, err := yaml.Marshal(data)
	if err != nil {
		return &res, errors.New(err.Error())
	}

	decoder := yaml.NewDecoder(bytes.NewReader(bytesData))
	decoder.KnownFields(true)

	err = decoder.Decode(&res)
	if err != nil {
		return &res, errors.New(err.Error())
	}

	return &res, nil
}

// Batches splits count items into consecutive [from, to) windows of at most size items.
func Batches(count, size uint64) [][2]uint64 {
	if count == 0 || size == 0 {
		return nil
	}

	batches := make([][2]uint64, 0, (count+size-1)/size)

	for from := uint64(0); from < count; from += size {
		batches = append(batches, [2]uint64{from, min(from+size, count)})
	}

	return batches
}

func CtxClosed(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
