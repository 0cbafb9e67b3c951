package lang

// Bilingual UI strings for the map. Korean is the default language and the
// fallback for any unknown language code. The tables are compiled in and
// never mutated at runtime.

const Default = "ko"

// Supported returns the language codes the UI ships with.
func Supported() []string {
	return []string{"ko", "en"}
}

// Known reports whether code is a supported language.
func Known(code string) bool {
	return code == "ko" || code == "en"
}

// UI holds the per-language interface strings, keyed by language code.
var UI = map[string]map[string]string{
	"ko": {
		"title":           "케데헌 따라 서울 여행 맵",
		"subtitle":        "<케이팝 데몬 헌터스>에 나온 서울 배경지를 따라가며 여행하는 웹앱",
		"search":          "장소 검색",
		"category":        "카테고리",
		"all":             "전체",
		"build_route":     "지도 앱으로 경로 열기",
		"route_hint":      "필터/정렬된 순서대로 최대 10곳까지 길찾기를 엽니다. (Google Maps)",
		"details":         "자세히",
		"directions":      "길찾기",
		"near_me":         "내 위치로",
		"lang_label":      "언어",
		"source_tag":      "케데헌 배경",
		"empty":           "검색 조건에 맞는 장소가 없습니다.",
		"qr_hint":         "QR 코드로 휴대폰에서 경로 열기",
		"locating":        "위치를 확인하는 중...",
		"locate_failed":   "위치를 가져오지 못했습니다.",
		"route_no_places": "경로를 만들 장소가 없습니다.",
	},
	"en": {
		"title":           "Seoul by Kedeheon — Bilingual Map",
		"subtitle":        "A travel map that follows Seoul locations featured in ‘K-Pop Demon Hunters’.",
		"search":          "Search places",
		"category":        "Category",
		"all":             "All",
		"build_route":     "Open route in map app",
		"route_hint":      "Opens Google Maps directions for up to 10 places in the current order.",
		"details":         "Details",
		"directions":      "Directions",
		"near_me":         "Center on me",
		"lang_label":      "Language",
		"source_tag":      "Kedeheon location",
		"empty":           "No places match your filters.",
		"qr_hint":         "Scan to open the route on your phone",
		"locating":        "Finding your location...",
		"locate_failed":   "Could not get your location.",
		"route_no_places": "No places to build a route from.",
	},
}

// categories maps category keys to their per-language labels.
var categories = map[string]map[string]string{
	"all":         {"ko": "전체", "en": "All"},
	"traditional": {"ko": "전통", "en": "Traditional"},
	"landmark":    {"ko": "랜드마크", "en": "Landmark"},
	"digital":     {"ko": "디지털", "en": "Digital"},
	"river":       {"ko": "한강", "en": "River"},
	"park":        {"ko": "공원", "en": "Park"},
	"bridge":      {"ko": "다리", "en": "Bridge"},
	"shopping":    {"ko": "쇼핑", "en": "Shopping"},
	"stadium":     {"ko": "경기장", "en": "Stadium"},
	"subway":      {"ko": "지하철", "en": "Subway"},
}

// T returns the UI string for key in the given language, falling back to
// Korean for unknown languages, and to the key itself for unknown keys.
func T(code, key string) string {
	table, ok := UI[code]
	if !ok {
		table = UI[Default]
	}
	if s, ok := table[key]; ok {
		return s
	}
	if s, ok := UI[Default][key]; ok {
		return s
	}
	return key
}

// Category returns the label for a category key in the given language.
// Unknown keys come back unchanged so a bad key is visible rather than blank.
func Category(code, key string) string {
	labels, ok := categories[key]
	if !ok {
		return key
	}
	if !Known(code) {
		code = Default
	}
	return labels[code]
}

// Toggle returns the other supported language.
func Toggle(code string) string {
	if code == "ko" {
		return "en"
	}
	return "ko"
}
