package pets

// Seed data is trusted and pre-validated; the validation layer only ever
// runs against incoming request parameters.

// SeedCats returns the cat directory records.
func SeedCats() []PetRecord {
	return []PetRecord{
		{PetID: "C895210", Name: "Fluffy", Breed: "Persian", Age: 2, Location: "Paw Pad", PhoneNumber: "(111) 111-1111", Email: "info@pawpad.com"},
		{PetID: "C895211", Name: "Mister Meanface", Breed: "Main Coon", Age: 5, Location: "The Scratching Post", PhoneNumber: "(222) 222-2222", Email: "meow@scratchingpost.com"},
		{PetID: "C895212", Name: "Fluffy", Breed: "Siamese", Age: 3, Location: "Paw Pad", PhoneNumber: "(111) 111-1111", Email: "info@pawpad.com"},
		{PetID: "C895213", Name: "Poof", Breed: "Russian Blue", Age: 7, Location: "Zoomies", PhoneNumber: "(444) 444-4444", Email: "info@zoomies.org"},
	}
}

// SeedDogs returns the dog directory records.
func SeedDogs() []PetRecord {
	return []PetRecord{
		{PetID: "d895220", Name: "Buddy", Breed: "Labrador", Age: 2, Location: "Dog Park", PhoneNumber: "(111) 111-1111", Email: "info@Dogpark.com"},
		{PetID: "d895221", Name: "Max", Breed: "Golden Retriever", Age: 2, Location: "Backyard", PhoneNumber: "(222) 222-2222", Email: "woof@backyard.com"},
		{PetID: "d895222", Name: "Coco", Breed: "German Shepherd", Age: 3, Location: "City Streets", PhoneNumber: "(333) 333-3333", Email: "bark@citystreets.com"},
		{PetID: "d895223", Name: "Buddy", Breed: "Boxer", Age: 4, Location: "Backyard", PhoneNumber: "(222) 222-2222", Email: "woof@backyard.com"},
	}
}

// SeedTestCats returns the secondary test-domain table. Same cats as the
// main directory but keyed by bare 6-digit IDs.
func SeedTestCats() []PetRecord {
	return []PetRecord{
		{PetID: "895210", Name: "Fluffy", Breed: "Persian", Age: 2, Location: "Paw Pad", PhoneNumber: "(111) 111-1111", Email: "info@pawpad.com"},
		{PetID: "895211", Name: "Mister Meanface", Breed: "Main Coon", Age: 5, Location: "The Scratching Post", PhoneNumber: "(222) 222-2222", Email: "meow@scratchingpost.com"},
		{PetID: "895212", Name: "Fluffy", Breed: "Siamese", Age: 3, Location: "Paw Pad", PhoneNumber: "(111) 111-1111", Email: "info@pawpad.com"},
		{PetID: "895213", Name: "Poof", Breed: "Russian Blue", Age: 7, Location: "Zoomies", PhoneNumber: "(444) 444-4444", Email: "info@zoomies.org"},
	}
}
