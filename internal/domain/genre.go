package domain

// Genre is a record category.
type Genre struct {
	ID   int64
	Name string
}

// DefaultGenres is the fixed vocabulary seeded on first start.
var DefaultGenres = []string{
	"Rock",
	"Classical",
	"Jazz",
	"Electronic",
	"Hip Hop",
	"Country",
	"Blues",
	"Reggae",
	"Folk",
	"Pop",
}
