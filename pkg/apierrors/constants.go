package apierrors

// Envelope message keys, localized through pkg/translator.
const (
	MsgValidationFailed   = "validationFailed"
	MsgInvalidPayload     = "invalidPayload"
	MsgInvalidID          = "invalidID"
	MsgUnauthenticated    = "unauthenticated"
	MsgInvalidCredentials = "invalidCredentials"
	MsgForbidden          = "forbidden"
	MsgInternalError      = "internalError"

	MsgUserCreated = "userCreated"
	MsgLoggedOut   = "loggedOut"
	MsgUserFetched = "userFetched"

	MsgCategoryNotFound  = "categoryNotFound"
	MsgCategoriesFetched = "categoriesFetched"
	MsgCategoryCreated   = "categoryCreated"
	MsgCategoryFetched   = "categoryFetched"
	MsgCategoryUpdated   = "categoryUpdated"
	MsgCategoryDeleted   = "categoryDeleted"

	MsgTaskNotFound = "taskNotFound"
	MsgTasksFetched = "tasksFetched"
	MsgTaskCreated  = "taskCreated"
	MsgTaskFetched  = "taskFetched"
	MsgTaskUpdated  = "taskUpdated"
	MsgTaskDeleted  = "taskDeleted"
)

// Per-field message keys carried inside validation errors.
const (
	MsgNameRequired     = "nameRequired"
	MsgNameTooLong      = "nameTooLong"
	MsgNameTaken        = "nameTaken"
	MsgTitleRequired    = "titleRequired"
	MsgTitleTooLong     = "titleTooLong"
	MsgTitleTaken       = "titleTaken"
	MsgEmailRequired    = "emailRequired"
	MsgEmailInvalid     = "emailInvalid"
	MsgEmailTooLong     = "emailTooLong"
	MsgEmailTaken       = "emailTaken"
	MsgPasswordRequired = "passwordRequired"
	MsgPasswordTooShort = "passwordTooShort"
	MsgPasswordMismatch = "passwordMismatch"
	MsgStatusInvalid    = "statusInvalid"
	MsgDueDateInvalid   = "dueDateInvalid"
	MsgDueDatePast      = "dueDatePast"
	MsgCategoryInvalid  = "categoryInvalid"
)
