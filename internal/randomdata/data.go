package randomdata

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Emily",
	"Anthony", "Ashley", "Mark", "Michelle", "Priya", "Arjun", "Ananya", "Rahul",
	"Kavya", "Vikram", "Sneha", "Rohan", "Aisha", "Omar", "Lucia", "Mateo",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Martinez", "Wilson", "Anderson", "Taylor", "Moore", "Jackson", "Martin", "Lee",
	"Thompson", "White", "Harris", "Clark", "Lewis", "Walker", "Young", "Allen",
	"Sharma", "Patel", "Reddy", "Iyer", "Nair", "Gupta", "Khan", "Silva",
}

var streetNames = []string{
	"Oak", "Maple", "Cedar", "Pine", "Elm", "Lake", "Hill", "Park",
	"River", "Sunset", "Church", "Mill", "Station", "Garden", "Temple", "Market",
}

var streetSuffixes = []string{
	"Street", "Avenue", "Road", "Lane", "Drive", "Court", "Way", "Boulevard",
}

var cities = []string{
	"New York", "Chicago", "Houston", "Seattle", "Denver", "Boston",
	"Mumbai", "Bengaluru", "Hyderabad", "Chennai", "Pune", "Kolkata",
	"London", "Manchester", "Toronto", "Sydney",
}

// Countries lists the options of the checkout country select.
var Countries = []string{
	"United States", "India", "United Kingdom", "Canada", "Australia",
}

// States lists the options of the checkout region select.
var States = []string{
	"California", "Texas", "New York", "Washington",
	"Karnataka", "Maharashtra", "Telangana", "Tamil Nadu",
	"Greater London", "Ontario", "New South Wales",
}
