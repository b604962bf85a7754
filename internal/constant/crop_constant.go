package constant

// Crop type tags accepted by the scanner. "other" is the catch-all.
const (
	CropRice      = "rice"
	CropWheat     = "wheat"
	CropCotton    = "cotton"
	CropTomato    = "tomato"
	CropPotato    = "potato"
	CropMaize     = "maize"
	CropSugarcane = "sugarcane"
	CropOther     = "other"
)

var cropTypes = map[string]bool{
	CropRice:      true,
	CropWheat:     true,
	CropCotton:    true,
	CropTomato:    true,
	CropPotato:    true,
	CropMaize:     true,
	CropSugarcane: true,
	CropOther:     true,
}

// IsValidCropType reports whether tag is one of the supported crop tags.
func IsValidCropType(tag string) bool {
	return cropTypes[tag]
}

// healthyReferenceImages maps each crop type to a stock photo of a healthy
// plant, shown next to the uploaded image in the comparison slider. The AI
// call never supplies this; it is looked up locally.
var healthyReferenceImages = map[string]string{
	CropRice:      "https://images.unsplash.com/photo-1536304993881-ff6e9eefa2a6?w=400",
	CropWheat:     "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=400",
	CropTomato:    "https://images.unsplash.com/photo-1592841200221-a6898f307baa?w=400",
	CropCotton:    "https://images.unsplash.com/photo-1605000797499-95a51c5269ae?w=400",
	CropPotato:    "https://images.unsplash.com/photo-1518977676601-b53f82ber72a?w=400",
	CropMaize:     "https://images.unsplash.com/photo-1551754655-cd27e38d2076?w=400",
	CropSugarcane: "https://images.unsplash.com/photo-1555012155-1f0b9e29a29c?w=400",
	CropOther:     "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=400",
}

// HealthyReferenceImage returns the comparison image for a crop type,
// falling back to the generic entry for unknown tags.
func HealthyReferenceImage(cropType string) string {
	if url, ok := healthyReferenceImages[cropType]; ok {
		return url
	}
	return healthyReferenceImages[CropOther]
}
