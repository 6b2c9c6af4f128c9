package namegen

// Default word banks. A mix of common American names from various
// backgrounds; all three lists can be replaced at construction time.

var maleFirstNames = []string{
	"Aaron", "Adam", "Adrian", "Alan", "Albert", "Alexander", "Andrew",
	"Anthony", "Arthur", "Benjamin", "Brandon", "Brian", "Bruce", "Carl",
	"Charles", "Christopher", "Daniel", "David", "Dennis", "Donald", "Douglas",
	"Edward", "Eric", "Eugene", "Frank", "Gary", "George", "Gerald",
	"Gregory", "Harold", "Henry", "Howard", "Jack", "James", "Jason",
	"Jeffrey", "Jeremy", "Jesse", "John", "Jonathan", "Joseph", "Joshua",
	"Justin", "Keith", "Kenneth", "Kevin", "Larry", "Lawrence", "Louis",
	"Marcus", "Mark", "Martin", "Matthew", "Michael", "Nathan", "Nicholas",
	"Oscar", "Patrick", "Paul", "Peter", "Philip", "Ralph", "Raymond",
	"Richard", "Robert", "Roger", "Ronald", "Roy", "Russell", "Ryan",
	"Samuel", "Scott", "Sean", "Stephen", "Steven", "Thomas", "Timothy",
	"Victor", "Vincent", "Walter", "Wayne", "William", "Zachary",
}

var femaleFirstNames = []string{
	"Abigail", "Alice", "Amanda", "Amy", "Andrea", "Angela", "Anna",
	"Barbara", "Betty", "Beverly", "Brenda", "Carol", "Carolyn", "Catherine",
	"Charlotte", "Christina", "Christine", "Cynthia", "Deborah", "Denise", "Diana",
	"Diane", "Dorothy", "Elizabeth", "Emily", "Emma", "Frances", "Gloria",
	"Grace", "Hannah", "Heather", "Helen", "Isabella", "Jacqueline", "Janet",
	"Janice", "Jean", "Jennifer", "Jessica", "Joan", "Joyce", "Judith",
	"Julia", "Julie", "Karen", "Katherine", "Kathleen", "Kathryn", "Kelly",
	"Kimberly", "Laura", "Lauren", "Linda", "Lisa", "Lori", "Louise",
	"Madison", "Margaret", "Maria", "Marie", "Marilyn", "Martha", "Mary",
	"Megan", "Melissa", "Michelle", "Nancy", "Nicole", "Olivia", "Pamela",
	"Patricia", "Rachel", "Rebecca", "Rose", "Ruth", "Samantha", "Sandra",
	"Sara", "Sarah", "Sharon", "Shirley", "Sophia", "Stephanie", "Susan",
	"Teresa", "Theresa", "Tiffany", "Virginia", "Wanda", "Wendy",
}

var surnames = []string{
	"Adams", "Anderson", "Baker", "Barnes", "Bell", "Bennett", "Brooks",
	"Brown", "Butler", "Campbell", "Carter", "Chen", "Clark", "Collins",
	"Cooper", "Cruz", "Davis", "Diaz", "Edwards", "Evans", "Fisher",
	"Flores", "Foster", "Garcia", "Gonzalez", "Gray", "Green", "Hall",
	"Harris", "Hayes", "Henderson", "Hernandez", "Hill", "Howard", "Hughes",
	"Jackson", "James", "Jenkins", "Johnson", "Jones", "Kelly", "Kim",
	"King", "Lee", "Lewis", "Long", "Lopez", "Martin", "Martinez",
	"Miller", "Mitchell", "Moore", "Morgan", "Morris", "Murphy", "Nelson",
	"Nguyen", "Parker", "Patterson", "Perez", "Perry", "Peterson", "Phillips",
	"Powell", "Price", "Ramirez", "Reed", "Reyes", "Richardson", "Rivera",
	"Roberts", "Robinson", "Rodriguez", "Rogers", "Ross", "Russell", "Sanchez",
	"Sanders", "Scott", "Simmons", "Smith", "Stewart", "Sullivan", "Taylor",
	"Thomas", "Thompson", "Torres", "Turner", "Walker", "Ward", "Washington",
	"Watson", "White", "Williams", "Wilson", "Wood", "Wright", "Young",
}
