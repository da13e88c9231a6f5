package config

// ImageRequirement describes one required photo category: what the caller
// must upload and the prompt the vision model is asked with.
type ImageRequirement struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Prompt      string `json:"-"`
}

// Fixed for the process lifetime. The list doubles as the upload whitelist
// and the completion threshold for submissions.
var imageRequirements = []ImageRequirement{
	{
		Type:        "front",
		Label:       "Front View",
		Description: "Clear view of the front of the vehicle",
		Prompt:      "Does this image clearly show the entire front of a vehicle? Check for: full view, no obstructions, good lighting.",
	},
	{
		Type:        "back",
		Label:       "Rear View",
		Description: "Clear view of the rear of the vehicle",
		Prompt:      "Does this image clearly show the entire rear of a vehicle? Check for: full view, no obstructions, visible license plate.",
	},
	{
		Type:        "left",
		Label:       "Left Side",
		Description: "Side view showing the left side of the vehicle",
		Prompt:      "Does this image show the complete left side of a vehicle? Check for: full side profile, no obstructions.",
	},
	{
		Type:        "right",
		Label:       "Right Side",
		Description: "Side view showing the right side of the vehicle",
		Prompt:      "Does this image show the complete right side of a vehicle? Check for: full side profile, no obstructions.",
	},
	{
		Type:        "engine",
		Label:       "Engine Bay",
		Description: "Clear view of the engine compartment",
		Prompt:      "Does this image clearly show the engine compartment? Check for: clear view of engine components.",
	},
	{
		Type:        "dashboard",
		Label:       "Dashboard",
		Description: "Showing odometer reading",
		Prompt:      "Does this image show the vehicle dashboard with visible odometer reading? Check for: clear numbers.",
	},
	{
		Type:        "vin",
		Label:       "VIN Plate",
		Description: "Clear photo of the vehicle identification number",
		Prompt:      "Does this image show a vehicle's VIN plate with readable characters? Check for: all characters legible.",
	},
	{
		Type:        "registration",
		Label:       "Registration",
		Description: "Current vehicle registration document",
		Prompt:      "Does this image show a current vehicle registration document? Check for: readable text, current dates.",
	},
}

// ImageRequirements returns the full required-category list in display order.
func ImageRequirements() []ImageRequirement {
	return imageRequirements
}

// RequirementByType looks up a requirement by its short type identifier.
func RequirementByType(imageType string) (ImageRequirement, bool) {
	for _, req := range imageRequirements {
		if req.Type == imageType {
			return req, true
		}
	}
	return ImageRequirement{}, false
}

// RequiredImageCount is the number of image rows a submission needs before
// it is marked complete.
func RequiredImageCount() int {
	return len(imageRequirements)
}
