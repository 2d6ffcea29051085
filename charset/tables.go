// Copyright 2026 The Boxes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package charset

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// RegisterCommon populates the common locale codesets, the same table
// tcell's encoding.Register builds from golang.org/x/text's charmap
// and CJK packages.
func RegisterCommon() {
	Register("ISO8859-1", charmap.ISO8859_1)
	Register("ISO8859-2", charmap.ISO8859_2)
	Register("ISO8859-3", charmap.ISO8859_3)
	Register("ISO8859-4", charmap.ISO8859_4)
	Register("ISO8859-5", charmap.ISO8859_5)
	Register("ISO8859-6", charmap.ISO8859_6)
	Register("ISO8859-7", charmap.ISO8859_7)
	Register("ISO8859-8", charmap.ISO8859_8)
	Register("ISO8859-13", charmap.ISO8859_13)
	Register("ISO8859-14", charmap.ISO8859_14)
	Register("ISO8859-15", charmap.ISO8859_15)
	Register("ISO8859-16", charmap.ISO8859_16)
	Register("KOI8-R", charmap.KOI8R)
	Register("KOI8-U", charmap.KOI8U)

	Register("EUC-JP", japanese.EUCJP)
	Register("Shift_JIS", japanese.ShiftJIS)
	Register("ISO2022JP", japanese.ISO2022JP)

	Register("EUC-KR", korean.EUCKR)

	Register("GB18030", simplifiedchinese.GB18030)
	Register("GB2312", simplifiedchinese.HZGB2312)
	Register("GBK", simplifiedchinese.GBK)

	Register("Big5", traditionalchinese.Big5)

	// Common aliases.
	Register("8859-1", charmap.ISO8859_1)
	Register("8859-15", charmap.ISO8859_15)
}
