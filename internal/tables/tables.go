/*
 * code128 - Module width tables for the Code 128 symbology.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package tables holds the static lookup tables shared by the Code 128
// planner and emitter: the module-width patterns and the symbolic names
// used when building a human readable encode trace.
package tables

// Codeword values with fixed, protocol level meanings. These are valid
// under more than one code set; the emitter picks the meaning from
// context rather than from the value alone.
const (
	Shift    = 98  // Shift next character to the other subset.
	CodeC    = 99  // Latch to subset C.
	CodeB    = 100 // Latch to subset B.  Also FNC4 under subset B.
	CodeA    = 101 // Latch to subset A.  Also FNC4 under subset A.
	FNC1     = 102 // Function 1 - GS1 application separator.
	FNC2     = 97  // Function 2 - host defined.
	FNC3     = 96  // Function 3 - reader programming.
	StartA   = 103
	StartB   = 104
	StartC   = 105
	Stop     = 106
	FNC4UndA = CodeA // FNC4 emitted while the active code set is A.
	FNC4UndB = CodeB // FNC4 emitted while the active code set is B.
)

// Widths holds the module-width pattern for every codeword, index 0..106.
// Each digit is a module count, alternating bar/space starting with a bar.
// Index 106 (stop) carries a seventh digit; all others are six digits.
var Widths = [107]string{
	"212222", "222122", "222221", "121223", "121322", "131222", // 0-5
	"122213", "122312", "132212", "221213", "221312", "231212", // 6-11
	"112232", "122132", "122231", "113222", "123122", "123221", // 12-17
	"223211", "221132", "221231", "213212", "223112", "312131", // 18-23
	"311222", "321122", "321221", "312212", "322112", "322211", // 24-29
	"212123", "212321", "232121", "111323", "131123", "131321", // 30-35
	"112313", "132113", "132311", "211313", "231113", "231311", // 36-41
	"112133", "112331", "132131", "113123", "113321", "133121", // 42-47
	"313121", "211331", "231131", "213113", "213311", "213131", // 48-53
	"311123", "311321", "331121", "312113", "312311", "332111", // 54-59
	"314111", "221411", "431111", "111224", "111422", "121124", // 60-65
	"121421", "141122", "141221", "112214", "112412", "122114", // 66-71
	"122411", "142112", "142211", "241211", "221114", "413111", // 72-77
	"241112", "134111", "111242", "121142", "121241", "114212", // 78-83
	"124112", "124211", "411212", "421112", "421211", "212141", // 84-89
	"214121", "412121", "111143", "111341", "131141", "114113", // 90-95
	"114311", "411113", "411311", "113141", "114131", "311141", // 96-101
	"411131", "211412", "211214", "211232", "2331112", // 102-106
}

// Names used for the opaque encodeInfo debug trace. Not part of the
// emitted symbol; callers should not parse this string.
var Names = map[int]string{
	StartA: "STARTA",
	StartB: "STARTB",
	StartC: "STARTC",
	CodeA:  "CODEA",
	CodeB:  "CODEB",
	CodeC:  "CODEC",
	Shift:  "SHFT",
	FNC1:   "FNC1",
	FNC2:   "FNC2",
	FNC3:   "FNC3",
	Stop:   "STOP",
}
