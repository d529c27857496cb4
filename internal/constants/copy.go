package constants

// Static page copy. Labels surrounding the computed values live here so the
// TUI and the line-mode commands print the same text.
const (
	EyebrowSuffix     = " からの歩み"
	HeadlineStarted   = "今日は %d 日目"
	HeadlineCountdown = "カウントダウン中"
	CountdownMessage  = "大切なスタートまではあと%d日 %s:%s:%s"
	TotalDaysLabel    = "total days"
	StoryMeta         = "出会ってからの特別な瞬間を一枚のキャンバスに描くように、このアプリは二人の時間を静かに数え続けます。"
	GridTitle         = "これからのハイライト"

	DetailDaysLabel    = "日数"
	DetailHoursLabel   = "時間"
	DetailMinutesLabel = "分"
	DetailSecondsLabel = "秒"

	DetailDaysValue    = "%d days"
	DetailHoursValue   = "%s hours"
	DetailMinutesValue = "%s minutes"
	DetailSecondsValue = "%s seconds"

	MilestoneReached   = "達成済み"
	MilestoneRemaining = "あと%d日"
	MilestoneTarget    = "%d日"
	TimelineTarget     = "%d日目"

	ToggleToSummer = "夏の風に切り替える"
	ToggleToWinter = "冬の風に切り替える"
)

const (
	NextMilestoneLabel = "次の節目「%s」まであと%d日"
	AllReachedLabel    = "すべての節目を達成しました"
)
