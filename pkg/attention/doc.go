// Package attention implements single-head scaled dot-product attention on
// gonum dense matrices.
package attention
