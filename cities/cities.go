package cities

import (
	"sort"
	"strings"
)

// canonicalNames maps caller-facing city tokens to the exact location names
// the CWA open-data API expects. Initialized once, never mutated.
var canonicalNames = map[string]string{
	"taipei":        "臺北市",
	"newtaipei":     "新北市",
	"taoyuan":       "桃園市",
	"taichung":      "臺中市",
	"tainan":        "臺南市",
	"kaohsiung":     "高雄市",
	"keelung":       "基隆市",
	"hsinchu":       "新竹市",
	"hsinchucounty": "新竹縣",
	"miaoli":        "苗栗縣",
	"changhua":      "彰化縣",
	"nantou":        "南投縣",
	"yunlin":        "雲林縣",
	"chiayi":        "嘉義市",
	"chiayicounty":  "嘉義縣",
	"pingtung":      "屏東縣",
	"yilan":         "宜蘭縣",
	"hualien":       "花蓮縣",
	"taitung":       "臺東縣",
	"penghu":        "澎湖縣",
	"kinmen":        "金門縣",
}

// Resolve returns the canonical CWA location name for a city token.
// Lookup is case-insensitive; unknown tokens return ok=false.
func Resolve(token string) (string, bool) {
	name, ok := canonicalNames[strings.ToLower(token)]
	return name, ok
}

// Supported returns the sorted list of supported city tokens.
func Supported() []string {
	tokens := make([]string, 0, len(canonicalNames))
	for token := range canonicalNames {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
