package index

// UnknownUnit is returned for unit codes missing from the table.
const UnknownUnit = "Unknown"

// Units of issue as enumerated in DIBBS index files. Kept verbatim,
// including the count-based codes (FV, FY, HD, MX) that read alike.
var unitNames = map[string]string{
	"AM": "AMPOULE",
	"AT": "ASSORTMENT",
	"BA": "BALL",
	"BD": "BUNDLE",
	"BE": "BALE",
	"BF": "BOARD FOOT",
	"BG": "BAG",
	"BK": "BOOK",
	"BO": "BOLT",
	"BT": "BOTTLE",
	"BX": "BOX",
	"CA": "CARTRIDGE",
	"CB": "CARBOY",
	"CD": "CUBIC YARD",
	"CE": "CONE",
	"CF": "CUBIC FOOT",
	"CL": "COIL",
	"CN": "CAN",
	"CO": "CONTAINER",
	"CY": "CYLINDER",
	"DR": "DRUM",
	"DZ": "DOZEN",
	"EA": "EACH",
	"FT": "FOOT",
	"FV": "FIVE",
	"FY": "FIFTY",
	"GL": "GALLON",
	"GP": "GROUP",
	"GR": "GROSS",
	"HD": "HUNDRED",
	"HK": "HANK",
	"JR": "JAR",
	"KT": "KIT",
	"LB": "POUND",
	"LG": "LENGTH",
	"MX": "THOUSAND",
	"OT": "OUTFIT",
	"OZ": "OUNCE",
	"PD": "PAD",
	"PG": "PACKAGE",
	"PR": "PAIR",
	"PT": "PINT",
	"QT": "QUART",
	"RA": "RATION",
	"RL": "REEL",
	"RM": "REAM",
	"RO": "ROLL",
	"SE": "SET",
	"SF": "SQUARE FOOT",
	"SH": "SHEET",
	"SK": "SKEIN",
	"SL": "SPOOL",
	"SP": "STRIP",
	"SX": "STICK",
	"SY": "SQUARE YARD",
	"TN": "TON",
	"TO": "TROY OUNCE",
	"TU": "TUBE",
	"VI": "VIAL",
	"YD": "YARD",
}

// UnitDescription resolves a 2-letter unit of issue to its long form.
// Codes missing from the table resolve to UnknownUnit, never an error:
// an unknown unit must not drop an otherwise good record.
func UnitDescription(code string) string {
	if name, ok := unitNames[code]; ok {
		return name
	}
	return UnknownUnit
}
