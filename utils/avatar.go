package utils

// Placeholder images applied when a client does not supply its own URL.
const (
	DefaultAvatarURL = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_960_720.png"

	DefaultReviewImgURL = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg"
)

// OrDefault returns fallback when url is empty.
func OrDefault(url, fallback string) string {
	if url == "" {
		return fallback
	}
	return url
}
