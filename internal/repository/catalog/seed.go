package catalog

import "github.com/kailas-cloud/soartv/internal/domain/video"

// seed is the built-in sample catalog. Ids are assigned in order starting at 1.
var seed = []video.Video{
	{
		Title:        "My Name Is Lola",
		Description:  "A heartwarming story about self-discovery, love, and finding your true voice. Follow Lola's journey as she navigates life, love, and the pursuit of her dreams.",
		ThumbnailURL: "/attached_assets/95EEC8AE-407A-46F9-B80E-EEE859F4465F_1753202512174.JPEG",
		VideoURL:     "https://www.youtube.com/watch?v=r38DH6uHdpE&t=2s",
		Duration:     "1:58:45",
		Views:        "2.3M views",
		Category:     "Drama",
		Rating:       8.7,
		Year:         2024,
		Type:         video.Movie,
	},
	{
		Title:        "Wicked",
		Description:  "Everyone deserves a chance to fly. The untold story of the witches of Oz - a stunning musical about friendship, destiny, and defying gravity.",
		ThumbnailURL: "/wicked-poster.avif",
		VideoURL:     "/wicked-trailer.mp4",
		Duration:     "2:40:15",
		Views:        "3.8M views",
		Category:     "Musical",
		Rating:       9.2,
		Year:         2024,
		Type:         video.Movie,
	},
	{
		Title:        "Soul Damage",
		Description:  "A gripping psychological thriller that explores the depths of human consciousness and the price of ambition. When a neuroscientist's groundbreaking research goes wrong, reality and nightmare collide.",
		ThumbnailURL: "/attached_assets/613kJUhqglL._SY522_-2_1753207112697.jpg",
		VideoURL:     "https://www.youtube.com/watch?v=5pL8M7g6KfU",
		Duration:     "2:15:30",
		Views:        "1.2M views",
		Category:     "Thriller",
		Rating:       8.4,
		Year:         2024,
		Type:         video.Movie,
	},
	{
		Title:        "From Darkness to Light!",
		Description:  "An inspiring true story of resilience and redemption. Follow one person's extraordinary journey from the depths of despair to finding purpose, hope, and the strength to transform not only their own life but the lives of others.",
		ThumbnailURL: "/attached_assets/Untitled design-3_1753210965852.jpg",
		VideoURL:     "/attached_assets/FDTL_60secTRAILER_1_stab_nyx3_hyp1_1_1753211212285.mp4",
		Duration:     "2:03:15",
		Views:        "3.7M views",
		Category:     "Drama",
		Rating:       9.1,
		Year:         2024,
		Type:         video.Movie,
	},
	{
		Title:        "If Love Could Heal",
		Description:  "A powerful story about the transformative power of love and compassion. When a heart surgeon meets a patient who challenges everything she believes about healing, their journey together proves that sometimes the greatest medicine is human connection.",
		ThumbnailURL: "/attached_assets/BAA2EC7F-04C0-486F-89AF-57A8EE100449_1753225563576.JPEG",
		VideoURL:     "/attached_assets/My Name is Lola Concept trailer  (We do not own the rights to the music)_1753204039587.mp4",
		Duration:     "1:45:30",
		Views:        "2.8M views",
		Category:     "Romance",
		Rating:       8.9,
		Year:         2024,
		Type:         video.Movie,
	},
	{
		Title:        "!FREAKS!",
		Description:  "A dark and twisted horror anthology that explores the disturbing side of human nature. When society's outcasts band together, they unleash something far more terrifying than anyone could imagine. Not for the faint of heart.",
		ThumbnailURL: "/attached_assets/unnamed-4_1753457581972.png",
		VideoURL:     "/attached_assets/!FREAKS! OFFICIAL TRAILER_1753457916551.mp4",
		Duration:     "1:55:22",
		Views:        "1.8M views",
		Category:     "Horror",
		Rating:       7.6,
		Year:         2024,
		Type:         video.Movie,
	},
	{
		Title:        "Alphaville",
		Description:  "A futuristic dystopian thriller set in a technologically advanced society where logic rules supreme and emotions are forbidden. When a secret agent infiltrates this sterile world, he discovers the power of love and poetry to overcome oppression.",
		ThumbnailURL: "/attached_assets/Alphaville POSTER_FINAL_1753467623607.PNG",
		VideoURL:     "/attached_assets/Alphaville Trailer_1753467678844.mp4",
		Duration:     "1:39:45",
		Views:        "2.1M views",
		Category:     "Sci-Fi",
		Rating:       8.3,
		Year:         2024,
		Type:         video.Movie,
	},
}
