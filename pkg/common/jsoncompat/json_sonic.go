//go:build sonic

package jsoncompat

import "github.com/bytedance/sonic"

// Marshal proxies to sonic.Marshal when the sonic build tag is present.
func Marshal(v any) ([]byte, error) { return sonic.Marshal(v) }

// Unmarshal proxies to sonic.Unmarshal when the sonic build tag is present.
func Unmarshal(data []byte, v any) error { return sonic.Unmarshal(data, v) }
