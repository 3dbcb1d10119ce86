package models

var seedReviews = [...]Review{
	{Client: "John Doe", Rating: 5, Comment: "Great product!"},
	{Client: "Jane Smith", Rating: 4, Comment: "Good service, but room for improvement."},
	{Client: "Alice Brown", Rating: 3, Comment: "Average experience."},
}

// SeedReviews returns a fresh copy of the initial review batch in insertion order.
func SeedReviews() []Review {
	reviews := make([]Review, len(seedReviews))
	copy(reviews, seedReviews[:])
	return reviews
}
