package nlp

// Словари для извлечения сущностей. Покрывают популярные на индийском
// рынке марки; неизвестные марки деградируют в "Unknown", а не в ошибку.

// Порядок проверки марок фиксирован: при совпадении нескольких ключей
// в одной фразе выигрывает первый по списку.
var makeOrder = []string{
	"tata", "maruti", "hyundai", "mahindra", "kia", "renault", "nissan",
	"skoda", "volkswagen", "toyota", "honda", "force", "jeep", "mg", "citroen",
}

var vehicleMakes = map[string]string{
	"tata":       "Tata",
	"maruti":     "Maruti",
	"hyundai":    "Hyundai",
	"mahindra":   "Mahindra",
	"kia":        "Kia",
	"renault":    "Renault",
	"nissan":     "Nissan",
	"skoda":      "Skoda",
	"volkswagen": "Volkswagen",
	"toyota":     "Toyota",
	"honda":      "Honda",
	"force":      "Force",
	"jeep":       "Jeep",
	"mg":         "MG",
	"citroen":    "Citroen",
}

var vehicleModels = map[string][]string{
	"tata":       {"nexon", "harrier", "safari", "altroz", "punch", "tigor"},
	"maruti":     {"swift", "wagon-r", "alto", "dzire", "brezza", "s-cross", "baleno"},
	"hyundai":    {"creta", "venue", "tucson", "i20", "i10", "kona"},
	"mahindra":   {"xuv500", "xuv700", "scorpio", "bolero", "thar", "nuvosport"},
	"kia":        {"seltos", "sonet", "carens", "niro"},
	"renault":    {"duster", "kwid", "triber"},
	"nissan":     {"magnite", "kicks"},
	"skoda":      {"rapid", "slavia", "superb"},
	"volkswagen": {"polo", "vento"},
	"toyota":     {"innova", "fortuner", "glanza"},
	"honda":      {"city", "civic", "jazz"},
	"jeep":       {"wrangler", "compass"},
	"mg":         {"hector", "astor", "gloster"},
	"citroen":    {"c3", "c5"},
}

var serviceTypes = []string{
	"general service",
	"oil change",
	"maintenance",
	"inspection",
	"repair",
	"battery replacement",
	"tire replacement",
	"alignment",
}

var bookingKeywords = []string{"book", "schedule", "appointment", "service", "need", "want"}
var checkKeywords = []string{"check", "view", "status", "booking", "confirm"}
var cancelKeywords = []string{"cancel", "delete", "remove", "reschedule"}
