package catalog

// Selectable option lists. Like the zone table these are fixed data, not
// runtime state; the UI offers them depending on the item's flags.

// WunschPizzaIngredients are the choosable ingredients for the Wunsch Pizza.
var WunschPizzaIngredients = []string{
	"Ananas", "Artischocken", "Barbecuesauce", "Brokkoli",
	"Champignons frisch", "Chili-Cheese-Soße", "Edamer",
	"Formfleisch-Vorderschinken", "Gewürzgurken", "Gorgonzola", "Gyros",
	"Hirtenkäse", "Hähnchenbrust", "Jalapeños", "Knoblauchwurst", "Mais",
	"Milde Peperoni", "Mozzarella", "Oliven", "Paprika", "Parmaschinken",
	"Peperoni, scharf", "Remoulade", "Rindermett", "Rindersalami", "Rucola",
	"Röstzwiebeln", "Sauce Hollandaise", "Spiegelei", "Spinat", "Tomaten",
	"Würstchen", "Zwiebeln", "ohne Zutat",
}

// PizzaExtras are the extras available on every pizza. Each one adds the
// fixed unit surcharge (domain.ExtraUnitPrice).
var PizzaExtras = WunschPizzaIngredients[:len(WunschPizzaIngredients)-1]

var PastaTypes = []string{"Spaghetti", "Maccheroni"}

var SauceTypes = []string{"Tzatziki", "ohne Soße"}

var SaladSauceTypes = []string{"Joghurt", "French", "Essig/Öl"}

var BeerTypes = []string{"Becks", "Herrenhäuser"}
