package assets

// LogoText is printed before the interactive command menu.
const LogoText = `
 _____                    _
|  ___| __ ___ _ __   ___| |__  _ __  _   _ _ __ ___
| |_ | '__/ _ \ '_ \ / __| '_ \| '_ \| | | | '_ ' _ \
|  _|| | |  __/ | | | (__| | | | | | | |_| | | | | | |
|_|  |_|  \___|_| |_|\___|_| |_|_| |_|\__,_|_| |_| |_|

`
