package seed

// catalogEntry is one default product. Values are per portion.
type catalogEntry struct {
	name     string
	calories float64
	protein  float64
	carbs    float64
	fats     float64
	fiber    float64
	portion  string
}

// catalog is the shared default product list. Order matters: the sample
// recipe and meals refer to the first two entries.
var catalog = []catalogEntry{
	// meat and fish
	{"Chicken breast", 165, 31, 0, 3.6, 0, "100g"},
	{"Salmon", 208, 22, 0, 13, 0, "100g"},
	{"Beef", 250, 26, 0, 17, 0, "100g"},
	{"Turkey", 160, 30, 0, 3.5, 0, "100g"},
	{"Tuna", 144, 30, 0, 1, 0, "100g"},
	{"Chicken egg", 155, 13, 1.1, 11, 0, "1 item"},

	// grains
	{"White rice", 130, 2.7, 28, 0.3, 0.4, "100g"},
	{"Buckwheat", 343, 13, 72, 3.4, 11, "100g"},
	{"Oatmeal", 389, 17, 66, 7, 11, "100g"},
	{"Quinoa", 368, 14, 64, 6, 7, "100g"},
	{"Wheat bread", 265, 9, 49, 3.3, 7, "100g"},
	{"Whole grain bread", 247, 13, 41, 4.2, 7, "100g"},
	{"Pasta", 131, 5, 25, 1.1, 1.8, "100g"},

	// vegetables
	{"Broccoli", 34, 2.8, 7, 0.4, 2.4, "100g"},
	{"Tomato", 18, 0.9, 3.9, 0.2, 1.2, "100g"},
	{"Cucumber", 16, 0.7, 4, 0.1, 0.5, "100g"},
	{"Carrot", 41, 0.9, 10, 0.2, 2.8, "100g"},
	{"Cabbage", 25, 1.3, 6, 0.1, 2.5, "100g"},
	{"Spinach", 23, 2.9, 3.6, 0.4, 2.2, "100g"},
	{"Bell pepper", 31, 1, 7, 0.3, 2.5, "100g"},
	{"Zucchini", 17, 1.2, 3.1, 0.3, 1, "100g"},
	{"Potato", 77, 2, 17, 0.1, 2.2, "100g"},
	{"Onion", 40, 1.1, 9, 0.1, 1.7, "100g"},

	// fruit
	{"Banana", 89, 1.1, 23, 0.3, 2.6, "1 item"},
	{"Apple", 52, 0.3, 14, 0.2, 2.4, "1 item"},
	{"Orange", 47, 0.9, 12, 0.1, 2.4, "1 item"},
	{"Pear", 57, 0.4, 15, 0.1, 3.1, "1 item"},
	{"Strawberry", 32, 0.7, 8, 0.3, 2, "100g"},
	{"Grapes", 69, 0.7, 18, 0.2, 0.9, "100g"},
	{"Apricot", 48, 1.4, 11, 0.4, 2, "1 item"},
	{"Peach", 39, 0.9, 10, 0.3, 1.5, "1 item"},
	{"Kiwi", 61, 1.1, 15, 0.5, 3, "1 item"},
	{"Avocado", 160, 2, 9, 15, 7, "100g"},

	// dairy
	{"Milk", 61, 3.2, 4.8, 3.3, 0, "100ml"},
	{"Cheese", 402, 25, 1.3, 33, 0, "100g"},
	{"Cottage cheese", 98, 11, 3.3, 4.3, 0, "100g"},
	{"Yogurt", 59, 10, 3.6, 0.4, 0, "100g"},
	{"Kefir", 41, 3, 4, 1, 0, "100ml"},
	{"Sour cream", 206, 2.8, 3.2, 20, 0, "100g"},

	// nuts and seeds
	{"Almonds", 579, 21, 22, 50, 12, "100g"},
	{"Walnuts", 654, 15, 14, 65, 6.7, "100g"},
	{"Peanuts", 567, 26, 16, 49, 8.5, "100g"},
	{"Chia seeds", 486, 17, 42, 31, 34, "100g"},

	// legumes
	{"Lentils", 116, 9, 20, 0.4, 7.9, "100g"},
	{"Beans", 127, 8.7, 22.8, 0.5, 6.4, "100g"},
	{"Chickpeas", 364, 19, 61, 6, 17, "100g"},

	// oils and fats
	{"Olive oil", 884, 0, 0, 100, 0, "100ml"},
	{"Sunflower oil", 884, 0, 0, 100, 0, "100ml"},
	{"Butter", 717, 0.5, 0.8, 81, 0, "100g"},

	// drinks
	{"Water", 0, 0, 0, 0, 0, "100ml"},
	{"Coffee", 2, 0.1, 0, 0, 0, "100ml"},
	{"Green tea", 1, 0, 0, 0, 0, "100ml"},

	// sweets
	{"Honey", 304, 0.3, 82, 0, 0.2, "100g"},
	{"Dark chocolate", 546, 7.8, 45, 31, 10.9, "100g"},
	{"Oatmeal cookies", 471, 6, 66, 18, 2.3, "100g"},
}
