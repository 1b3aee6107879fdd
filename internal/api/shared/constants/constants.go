package constants

const (
	// MAX_NEED_IDS_PER_REQUEST caps batched need lookups
	MAX_NEED_IDS_PER_REQUEST = 100
	// MAX_NAME_LENGTH caps need names and user names
	MAX_NAME_LENGTH = 120
	// MAX_DESCRIPTION_LENGTH caps need descriptions
	MAX_DESCRIPTION_LENGTH = 4000
	// MAX_IMAGES_PER_NEED caps display image references on a need
	MAX_IMAGES_PER_NEED = 10
)
