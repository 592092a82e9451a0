// Package conversion provides the local domain.ConversionService backed by a
// converter.Converter.
package conversion
