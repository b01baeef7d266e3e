package compose

import (
	"fmt"
	"time"

	"github.com/slovoapp/slovo-server/internal/domain"
)

// Russian locale data shared by all composition logic. Weekday names are
// Monday-first; month names are in the genitive case used after a day
// number.
var weekdayNames = [7]string{
	"понедельник", "вторник", "среда", "четверг", "пятница", "суббота", "воскресенье",
}

var monthNamesGenitive = [12]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// audienceInfo holds the rendering labels of one audience block.
type audienceInfo struct {
	header    string
	readLabel string
}

var audienceInfos = map[string]audienceInfo{
	domain.AudienceOlder: {
		header:    "🚀 <b>ДЕТЯМ И ПОДРОСТКАМ 3-15 ЛЕТ</b>",
		readLabel: "дети 3-15 лет",
	},
	domain.AudienceYounger: {
		header:    "🧸 <b>ДЕТЯМ ОТ 0 ДО 3 ЛЕТ</b>",
		readLabel: "дети 0-3 лет",
	},
}

// formatDate renders a message date line like "6 января – понедельник".
// weekday is the Monday-first day index within the week.
func formatDate(date time.Time, weekday int) string {
	return fmt.Sprintf("%d %s – %s", date.Day(), monthNamesGenitive[date.Month()-1], weekdayNames[weekday])
}
