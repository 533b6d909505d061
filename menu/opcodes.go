package menu

// operatorNames maps operator codes to their textual form. Entries 23-26
// are placeholders for the static dvar accessors, which the serializer
// renders specially and never looks up here. Codes from OpCount upward are
// the named expression functions.
var operatorNames = []string{
	"NOOP",
	")",
	"*",
	"/",
	"%",
	"+",
	"-",
	"!",
	"<",
	"<=",
	">",
	">=",
	"==",
	"!=",
	"&&",
	"||",
	"(",
	",",
	"&",
	"|",
	"~",
	"<<",
	">>",
	"dvarint(static)",
	"dvarbool(static)",
	"dvarfloat(static)",
	"dvarstring(static)",
	"int",
	"string",
	"float",
	"sin",
	"cos",
	"min",
	"max",
	"milliseconds",
	"dvarint",
	"dvarbool",
	"dvarfloat",
	"dvarstring",
	"stat",
	"ui_active",
	"flashbanged",
	"usingvehicle",
	"missilecam",
	"scoped",
	"scopedthermal",
	"scoreboard_visible",
	"inkillcam",
	"inkillcamnpc",
	"player",
	"getperk",
	"selecting_location",
	"selecting_direction",
	"team",
	"otherteam",
	"marinesfield",
	"opforfield",
	"menuisopen",
	"writingdata",
	"inlobby",
	"inprivateparty",
	"privatepartyhost",
	"privatepartyhostinlobby",
	"aloneinparty",
	"adsjavelin",
	"weaplockblink",
	"weapattacktop",
	"weapattackdirect",
	"weaplocking",
	"weaplocked",
	"weaplocktooclose",
	"weaplockscreenposx",
	"weaplockscreenposy",
	"secondsastime",
	"tablelookup",
	"tablelookupbyrow",
	"tablegetrownum",
	"locstring",
	"localvarint",
	"localvarbool",
	"localvarfloat",
	"localvarstring",
	"timeleft",
	"secondsascountdown",
	"gamemsgwndactive",
	"gametypename",
	"gametype",
	"gametypedescription",
	"scoreatrank",
	"friendsonline",
	"spectatingclient",
	"spectatingfree",
	"statrangeanybitsset",
	"keybinding",
	"actionslotusable",
	"hudfade",
	"maxrecommendedplayers",
	"acceptinginvite",
	"isintermission",
	"gamehost",
	"partyismissingmappack",
	"partymissingmappackerror",
	"anynewmappacks",
	"amiselected",
	"partystatusstring",
	"attachedcontrollercount",
	"issplitscreenonlinepossible",
	"splitscreenplayercount",
	"getplayerdata",
	"getplayerdatasplitscreen",
	"experienceforlevel",
	"levelforexperience",
	"isitemunlocked",
	"isitemunlockedsplitscreen",
	"debugprint",
	"getplayerdataanybooltrue",
	"weaponclassnew",
	"weaponname",
	"isreloading",
	"savegameavailable",
	"unlockeditemcount",
	"unlockeditemcountsplitscreen",
	"unlockeditem",
	"unlockeditemsplitscreen",
	"mailsubject",
	"mailfrom",
	"mailreceived",
	"mailbody",
	"maillootlocalized",
	"mailgivesloot",
	"anynewmail",
	"mailtimetofollowup",
	"mailloottype",
	"mailranlottery",
	"lotterylootlocalized",
	"radarisjammed",
	"radarjamintensity",
	"radarisenabled",
	"isempjammed",
	"playerads",
	"weaponheatactive",
	"weaponheatvalue",
	"weaponheatoverheated",
	"getsplashtext",
	"getsplashdescription",
	"getsplashmaterial",
	"splashhasicon",
	"splashrownum",
	"getfocuseditemname",
	"getfocuseditemx",
	"getfocuseditemy",
	"getfocuseditemwidth",
	"getfocuseditemheight",
	"getitemx",
	"getitemy",
	"getitemwidth",
	"getitemheight",
	"playlist",
	"scoreboardexternalmutenotice",
	"getclientmatchdata",
	"getclientmatchdatadef",
	"getmapname",
	"getmapimage",
	"getmapcustom",
	"getmigrationstatus",
	"getplayercardinfo",
	"isofflineprofileselected",
	"coopplayer",
	"iscoop",
	"getpartystatus",
	"getsearchparams",
	"gettimeplayed",
	"isselectedplayerfriend",
	"getcharbyindex",
	"getprofiledata",
	"isprofilesignedin",
	"getwaitpopupstatus",
	"getnattype",
	"getlocalizednattype",
	"getadjustedsafeareahorizontal",
	"getadjustedsafeareavertical",
	"connectioninfo",
	"offlineprofilecansave",
	"allsplitscreenprofilescansave",
	"allsplitscreenprofilesaresignedin",
	"coopready",
}

var operatorCodesByName map[string]OperatorCode

func init() {
	operatorCodesByName = make(map[string]OperatorCode, len(operatorNames))
	for code, name := range operatorNames {
		operatorCodesByName[name] = OperatorCode(code)
	}
}

// OperatorCodeByName looks an operator or expression function up by its
// textual form.
func OperatorCodeByName(name string) (OperatorCode, bool) {
	code, ok := operatorCodesByName[name]
	return code, ok
}
