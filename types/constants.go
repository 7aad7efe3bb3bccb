package types

const (
	FIREBASE_MESSAGING_TOKEN_COLLECTION = "messagingTokens"
	FIREBASE_HEALTH_COLLECTION          = "health"
	FIREBASE_HEALTH_DOCUMENT            = "probe"

	CLOUD_TASKS_HANDLER_PATH = "/tasks/notifications"
	FIREBASE_WEB_CONFIG_PATH = "/__/firebase/init.json"

	CONTEXT_USER_KEY = "user"
)
