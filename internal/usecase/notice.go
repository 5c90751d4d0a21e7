package usecase

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a non-blocking message for the caller to surface, e.g. as a toast.
type Notice struct {
	Level   NoticeLevel
	Title   string
	Message string
}

var (
	noticeRateLimited = Notice{
		Level:   NoticeWarning,
		Title:   "Request limit reached",
		Message: "The sports data provider request limit has been reached. Try again later.",
	}
	noticeProviderError = Notice{
		Level:   NoticeError,
		Title:   "Sports data provider error",
		Message: "The sports data provider rejected the request.",
	}
	noticeUnreachable = Notice{
		Level:   NoticeError,
		Title:   "Could not reach sports data",
		Message: "Could not reach the sports data service. Try again.",
	}
	noticeNoGames = Notice{
		Level:   NoticeInfo,
		Title:   "No games found",
		Message: "No games match the selected filters.",
	}
	noticeNoLeagues = Notice{
		Level:   NoticeInfo,
		Title:   "No leagues found",
		Message: "No leagues match the selected filters.",
	}
)
