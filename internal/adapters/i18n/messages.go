package i18n

// Locale identifiers.
const (
	LocaleZhTW = "zh-TW"
	LocaleEn   = "en"
	LocaleJa   = "ja"
)

// DefaultLocale is used when the requested or detected locale is unsupported.
const DefaultLocale = LocaleZhTW

// supportedLocales lists locales in picker order.
var supportedLocales = []string{LocaleZhTW, LocaleEn, LocaleJa}

// localeNames are shown in the language picker, each in its own language.
var localeNames = map[string]string{
	LocaleZhTW: "繁體中文",
	LocaleEn:   "English",
	LocaleJa:   "日本語",
}

// messages holds every translated string keyed by locale then message key.
var messages = map[string]map[string]string{
	LocaleZhTW: {
		"sidebar.title":       "設定選單",
		"sidebar.variant":     "選擇樣式",
		"sidebar.mode":        "選擇模式",
		"sidebar.duration":    "時間設定",
		"sidebar.hours":       "小時",
		"sidebar.minutes":     "分鐘",
		"sidebar.start":       "開始",
		"sidebar.reset":       "重置",
		"sidebar.fullscreen":  "全螢幕",
		"sidebar.language":    "語言",
		"mode.loop":           "無限循環模式",
		"mode.timed":          "定時模式",
		"toast.zero_duration": "請先設定時間",
		"toast.locale":        "語言已切換為 %s",
		"help.idle":           "enter 開始 · 1/2/3 樣式 · m 模式 · e 時間 · r 重置 · l 語言 · f 全螢幕 · tab 隱藏選單 · q 離開",
		"help.hidden":         "tab 顯示選單",
		"help.edit":           "↑/↓ 切換欄位 · enter 確認 · esc 取消",
		"failure.line1":       "您的裝置發生問題，因此必須重新啟動。",
		"failure.line2":       "我們剛剛正在收集某些錯誤資訊，接著您可以重新啟動",
		"failure.progress":    "已完成 %d%%",
		"failure.info":        "如需此問題與可能修正的詳細資訊，請瀏覽 https://www.windows.com/stopcode",
		"failure.support":     "致電支援人員時，請提供此資訊:",
		"failure.stopcode":    "停止代碼: %s",
		"failure.failed":      "失敗的項目: %s",
		"update.working":      "正在處理更新",
		"update.progress":     "%d%% 完成",
		"update.warning":      "請勿關閉電腦",
	},
	LocaleEn: {
		"sidebar.title":       "Settings",
		"sidebar.variant":     "Screen style",
		"sidebar.mode":        "Mode",
		"sidebar.duration":    "Duration",
		"sidebar.hours":       "hours",
		"sidebar.minutes":     "minutes",
		"sidebar.start":       "Start",
		"sidebar.reset":       "Reset",
		"sidebar.fullscreen":  "Fullscreen",
		"sidebar.language":    "Language",
		"mode.loop":           "Infinite loop",
		"mode.timed":          "Timed",
		"toast.zero_duration": "Please set a duration first",
		"toast.locale":        "Language switched to %s",
		"help.idle":           "enter start · 1/2/3 style · m mode · e duration · r reset · l language · f fullscreen · tab hide menu · q quit",
		"help.hidden":         "tab show menu",
		"help.edit":           "↑/↓ switch field · enter confirm · esc cancel",
		"failure.line1":       "Your PC ran into a problem and needs to restart.",
		"failure.line2":       "We're just collecting some error info, and then we'll restart for you.",
		"failure.progress":    "%d%% complete",
		"failure.info":        "For more information about this issue and possible fixes, visit https://www.windows.com/stopcode",
		"failure.support":     "If you call a support person, give them this info:",
		"failure.stopcode":    "Stop code: %s",
		"failure.failed":      "What failed: %s",
		"update.working":      "Working on updates",
		"update.progress":     "%d%% complete",
		"update.warning":      "Don't turn off your computer",
	},
	LocaleJa: {
		"sidebar.title":       "設定メニュー",
		"sidebar.variant":     "スタイル選択",
		"sidebar.mode":        "モード選択",
		"sidebar.duration":    "時間設定",
		"sidebar.hours":       "時間",
		"sidebar.minutes":     "分",
		"sidebar.start":       "開始",
		"sidebar.reset":       "リセット",
		"sidebar.fullscreen":  "全画面",
		"sidebar.language":    "言語",
		"mode.loop":           "無限ループ",
		"mode.timed":          "タイマー",
		"toast.zero_duration": "先に時間を設定してください",
		"toast.locale":        "言語を %s に切り替えました",
		"help.idle":           "enter 開始 · 1/2/3 スタイル · m モード · e 時間 · r リセット · l 言語 · f 全画面 · tab メニューを隠す · q 終了",
		"help.hidden":         "tab メニューを表示",
		"help.edit":           "↑/↓ 項目切替 · enter 確定 · esc キャンセル",
		"failure.line1":       "PC に問題が発生したため、再起動する必要があります。",
		"failure.line2":       "エラー情報を収集しています。その後、自動的に再起動します。",
		"failure.progress":    "%d%% 完了",
		"failure.info":        "この問題と可能な解決方法の詳細については、https://www.windows.com/stopcode を参照してください",
		"failure.support":     "サポート担当者に連絡する場合は、この情報を伝えてください:",
		"failure.stopcode":    "停止コード: %s",
		"failure.failed":      "失敗した内容: %s",
		"update.working":      "更新プログラムを構成しています",
		"update.progress":     "%d%% 完了",
		"update.warning":      "コンピューターの電源を切らないでください",
	},
}
