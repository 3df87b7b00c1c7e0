// Package bivar owns the joint class encoding: two class indices in
// 1..k become one combined code, and back.
//
// The convention is code = classX*10 + classY, both 1-indexed. For the
// supported dimensions (k = 3 or 4) the mapping is a bijection; Decode
// inverts Encode exactly. Masked samples carry code 0 and never form a
// real pair.
package bivar
