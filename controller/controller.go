package controller

import "salesdesk/platform"

var logger = platform.Logger
