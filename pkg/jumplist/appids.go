package jumplist

// appNames maps well-known AppID hashes to the application that owns them.
// The hash is the lowercase hex CRC64 the shell derives from the
// application's identity; it is stable across machines, so a curated table
// is enough to label the common cases. Unknown ids resolve to "".
var appNames = map[string]string{
	"1b4dd67f29cb1962": "Windows Explorer (pinned/frequent)",
	"28c8b86deab549a1": "Internet Explorer",
	"5afe4de1b92fc382": "Windows Explorer",
	"7e4dca80246863e3": "Control Panel",
	"9b9cdc69c1c24e2b": "Notepad (64-bit)",
	"918e0ecb43d17e23": "Notepad (32-bit)",
	"f01b4d95cf55d32a": "Windows Explorer (Windows 8.1+)",
	"5f7b5f1e01b83767": "Quick Access",
	"9d1f905ce5044aee": "Microsoft Edge",
	"47bb2136fda3f1ed": "Microsoft Edge (Chromium)",
	"590aee7bdd69b59b": "PowerShell (64-bit)",
	"6728dd69a3088f97": "PowerShell (32-bit)",
	"fb3b0dbfee58fac8": "Microsoft Word 365",
	"a4a5324453625195": "Microsoft Word 2013 (32-bit)",
	"44a398496acc926d": "Microsoft Excel 2013 (32-bit)",
	"b8ab77100df80ab2": "Microsoft Excel 365",
	"d00655d2aa12ff6d": "Microsoft PowerPoint 365",
	"dfb1fb98b4e1dfb6": "Microsoft PowerPoint 2013 (32-bit)",
	"be71009ff8bb02a2": "Microsoft Outlook",
	"d7528034b5bd6f28": "Windows Live Mail",
	"5d696d521de238c3": "Google Chrome",
	"a7bd71699cd38d1c": "Microsoft Word 2010 (32-bit)",
	"6e855c85de07bc6a": "Microsoft Excel 2010 (32-bit)",
	"9839aec31243a928": "Microsoft PowerPoint 2010 (32-bit)",
	"12dc1ea8e34b5a6": "Microsoft Paint",
	"9f5c7755804b850a": "Windows Script Host",
	"290532160612e071": "WinRAR",
	"c54b96f328bdc28d": "7-Zip",
	"271e609288e1210a": "Microsoft Office Access 2010 (32-bit)",
	"cdf30b95c55fd785": "Microsoft Office Excel (32-bit)",
	"23646679aaccfae0": "Adobe Reader",
	"d5c02fc7afbb3fd4": "Adobe Reader 11",
	"ace52d2c7d1c7cbd": "Firefox",
	"28c8b86deab549a2": "Internet Explorer (64-bit)",
	"435a2f986b404eb7": "Skype",
	"83b03b46dcd30a0e": "iTunes",
	"e36bfc8972e5ab1d": "XPS Viewer",
	"bc03160ee1a59fc1": "Foxit Reader",
	"337ed59af273c758": "Sticky Notes",
	"fa496fe13dd62edf": "KeePass 2",
	"3dc02b55e44d6697": "7-Zip File Manager",
	"4cb9c5750d51c07f": "Movie Maker",
	"3edf100b207e2199": "Notepad++",
	"b0459de4674aab56": "WordPad",
	"9c7cc110ff56d1bd": "Microsoft PowerPoint (32-bit)",
	"90e5e8b21d7e7924": "Windows Media Player Classic",
	"74d7f43c1561fc1e": "Windows Media Player",
	"7f4cad9c2e7a8bc7": "Remote Desktop Connection",
	"5c450709f7ae4396": "Firefox (32-bit)",
	"6824f4a902c78fbd": "Firefox (64-bit)",
	"1bc392b8e104a00e": "Remote Desktop",
	"e6ee34ac9913c0a9": "VLC media player",
	"2fa14c7753239e4c": "Paint.NET",
	"4b6925efc53a3c08": "BCWipe Task Manager",
	"b74736c2bd8cc8a5": "UltraEdit",
	"a79a7ce3c45d781": "CCleaner",
	"1ced32d74a95c7bc": "Visual Studio",
	"4975d6798a8bdf66": "7-Zip GUI",
	"ccba5a5986c77e43": "Sublime Text",
	"e2a593822e01aed3": "Adobe Flash",
	"959e11583c19ab29": "Visual Studio Code",
}

// AppName resolves a jumplist AppID hash to a human readable application
// name, or "" when the id is not in the curated table.
func AppName(appID string) string {
	return appNames[appID]
}
