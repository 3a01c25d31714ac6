package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Customer ID generation
const (
	// CustomerIDPrefix префикс генерируемых идентификаторов клиентов (C001, C002, ...)
	CustomerIDPrefix = "C"

	// CustomerIDDigits количество цифр в числовой части идентификатора
	CustomerIDDigits = 3
)

// MonthAbbreviations сокращённые названия месяцев для годовой разбивки дашборда
// Индекс 0 соответствует январю
var MonthAbbreviations = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}
