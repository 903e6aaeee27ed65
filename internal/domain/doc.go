// Package domain contains the HBnB business entities (users, places, reviews
// and amenities) together with the validation rules they enforce. It depends
// on nothing inside the application and knows nothing about storage or HTTP.
package domain
